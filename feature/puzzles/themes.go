package puzzles

import "breezechess/core/apperr"

// ThemesKey is the filter attribute holding the theme identifiers.
const ThemesKey = "themes"

// ExtractThemes returns the theme filter contained in filters. A missing,
// null or empty themes attribute means no theme filter and yields nil.
// A single string is accepted as a one element list.
func ExtractThemes(filters map[string]any) ([]string, error) {
	if len(filters) == 0 {
		return nil, nil
	}

	raw, ok := filters[ThemesKey]
	if !ok || raw == nil {
		return nil, nil
	}

	var themes []string
	switch v := raw.(type) {
	case string:
		if v != "" {
			themes = append(themes, v)
		}
	case []string:
		for _, theme := range v {
			if theme != "" {
				themes = append(themes, theme)
			}
		}
	case []any:
		for i, item := range v {
			theme, ok := item.(string)
			if !ok {
				return nil, apperr.Validationf("puzzles.themes", "themes[%d] must be a string, got %T", i, item)
			}
			if theme != "" {
				themes = append(themes, theme)
			}
		}
	default:
		return nil, apperr.Validationf("puzzles.themes", "themes must be a list of strings, got %T", raw)
	}

	if len(themes) == 0 {
		return nil, nil
	}
	return themes, nil
}
