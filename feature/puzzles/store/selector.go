package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"gorm.io/gorm"
)

const (
	// DefaultTable is the table holding the imported puzzle database.
	DefaultTable = "puzzles"
	// DefaultThemesColumn holds the space separated theme tags of a puzzle.
	DefaultThemesColumn = "Themes"
)

// Selector picks random puzzles from the puzzles table, optionally restricted
// to puzzles tagged with every requested theme.
type Selector struct {
	table        string
	themesColumn string
}

// NewSelector creates a selector over the default puzzles table.
func NewSelector() *Selector {
	return &Selector{table: DefaultTable, themesColumn: DefaultThemesColumn}
}

// Select returns up to count puzzles in random order. A non-positive count
// yields an empty result.
func (s *Selector) Select(ctx context.Context, db *gorm.DB, themes []string, count int) ([]map[string]any, error) {
	records := []map[string]any{}
	if count <= 0 {
		return records, nil
	}

	dialect := db.Dialector.Name()
	query := db.WithContext(ctx).Table(s.table)

	column := db.Statement.Quote(s.themesColumn)
	padded := fmt.Sprintf("(' ' || %s || ' ')", column)
	if dialect == "mysql" {
		padded = fmt.Sprintf("CONCAT(' ', %s, ' ')", column)
	}
	for _, theme := range NormalizeThemes(themes) {
		query = query.Where(padded+" LIKE ?", "% "+theme+" %")
	}

	random := "RANDOM()"
	if dialect == "mysql" {
		random = "RAND()"
	}

	if err := query.Order(random).Limit(count).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to select puzzles: %w", err)
	}
	return records, nil
}

// NormalizeThemes converts theme identifiers to the lowerCamel form used in
// the puzzle database ("back_rank_mate" -> "backRankMate"), dropping blanks
// and duplicates.
func NormalizeThemes(themes []string) []string {
	seen := make(map[string]struct{}, len(themes))
	var out []string
	for _, theme := range themes {
		theme = strings.TrimSpace(theme)
		if theme == "" {
			continue
		}
		theme = strcase.ToLowerCamel(theme)
		if _, ok := seen[theme]; ok {
			continue
		}
		seen[theme] = struct{}{}
		out = append(out, theme)
	}
	return out
}
