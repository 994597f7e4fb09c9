package puzzles

import (
	"context"
	"strings"

	"breezechess/core/apperr"
	"breezechess/core/database"

	"go.uber.org/zap"
	"gopkg.in/go-playground/validator.v9"
	"gorm.io/gorm"
)

// Selector picks puzzles from the database. Implementations own the whole
// selection logic; the gateway only forwards the theme filter and the count.
type Selector interface {
	Select(ctx context.Context, db *gorm.DB, themes []string, count int) ([]Record, error)
}

// Service forwards validated puzzle requests to the selector.
type Service struct {
	provider database.Provider
	selector Selector
	validate *validator.Validate
	logger   *zap.Logger
}

// NewService creates a new puzzle service.
func NewService(provider database.Provider, selector Selector, logger *zap.Logger) *Service {
	return &Service{
		provider: provider,
		selector: selector,
		validate: validator.New(),
		logger:   logger,
	}
}

// Validate checks that both filters and count were supplied.
func (s *Service) Validate(req Request) error {
	if err := s.validate.Struct(req); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			var missing []string
			for _, fe := range fieldErrs {
				missing = append(missing, strings.ToLower(fe.Field()))
			}
			return apperr.Validationf("puzzles.validate", "missing required field(s): %s", strings.Join(missing, ", "))
		}
		return apperr.Validation("puzzles.validate", err)
	}
	return nil
}

// GetPuzzles validates req, resolves the database handle and delegates the
// selection. Every returned error carries an apperr kind.
func (s *Service) GetPuzzles(ctx context.Context, req Request) (*Response, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	themes, err := ExtractThemes(req.Filters)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Received puzzle request",
		zap.Any("filters", req.Filters),
		zap.Strings("themes", themes),
		zap.Int("count", *req.Count),
	)

	db, err := s.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.selector.Select(ctx, db, themes, *req.Count)
	if err != nil {
		return nil, apperr.Upstream("puzzles.select", err)
	}
	if records == nil {
		records = []Record{}
	}

	s.logger.Info("Retrieved puzzles", zap.Int("retrieved", len(records)))

	return &Response{
		Success:       true,
		InputReceived: req,
		Result:        records,
	}, nil
}
