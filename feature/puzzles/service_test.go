package puzzles_test

import (
	"context"
	"errors"
	"testing"

	"breezechess/core/apperr"
	"breezechess/feature/puzzles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// mockSelector is a testify mock of puzzles.Selector.
type mockSelector struct {
	mock.Mock
}

func (m *mockSelector) Select(ctx context.Context, db *gorm.DB, themes []string, count int) ([]puzzles.Record, error) {
	args := m.Called(ctx, db, themes, count)
	records, _ := args.Get(0).([]puzzles.Record)
	return records, args.Error(1)
}

// stubProvider hands out a fixed database handle or error.
type stubProvider struct {
	db    *gorm.DB
	err   error
	calls int
}

func (p *stubProvider) DB(ctx context.Context) (*gorm.DB, error) {
	p.calls++
	return p.db, p.err
}

func intPtr(v int) *int { return &v }

func noThemes() any {
	return mock.MatchedBy(func(themes []string) bool { return themes == nil })
}

func TestService_GetPuzzles(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db := &gorm.DB{}
		sel := new(mockSelector)
		records := []puzzles.Record{{"PuzzleId": "a"}, {"PuzzleId": "b"}, {"PuzzleId": "c"}}
		sel.On("Select", mock.Anything, db, []string{"fork", "pin"}, 3).Return(records, nil)

		svc := puzzles.NewService(&stubProvider{db: db}, sel, zap.NewNop())
		req := puzzles.Request{Filters: map[string]any{"themes": []any{"fork", "pin"}}, Count: intPtr(3)}

		resp, err := svc.GetPuzzles(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, req, resp.InputReceived)
		assert.Equal(t, records, resp.Result)
		sel.AssertExpectations(t)
	})

	t.Run("EmptyFiltersMeansNoThemeFilter", func(t *testing.T) {
		sel := new(mockSelector)
		sel.On("Select", mock.Anything, mock.Anything, noThemes(), 5).Return([]puzzles.Record{}, nil)

		svc := puzzles.NewService(&stubProvider{}, sel, zap.NewNop())
		resp, err := svc.GetPuzzles(context.Background(), puzzles.Request{Filters: map[string]any{}, Count: intPtr(5)})
		require.NoError(t, err)
		assert.NotNil(t, resp.Result)
		sel.AssertExpectations(t)
	})

	t.Run("NilResultBecomesEmptyList", func(t *testing.T) {
		sel := new(mockSelector)
		sel.On("Select", mock.Anything, mock.Anything, mock.Anything, 1).Return(nil, nil)

		svc := puzzles.NewService(&stubProvider{}, sel, zap.NewNop())
		resp, err := svc.GetPuzzles(context.Background(), puzzles.Request{Filters: map[string]any{}, Count: intPtr(1)})
		require.NoError(t, err)
		assert.Equal(t, []puzzles.Record{}, resp.Result)
	})

	t.Run("SelectorErrorIsUpstream", func(t *testing.T) {
		sel := new(mockSelector)
		sel.On("Select", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("statement timeout"))

		svc := puzzles.NewService(&stubProvider{}, sel, zap.NewNop())
		_, err := svc.GetPuzzles(context.Background(), puzzles.Request{Filters: map[string]any{}, Count: intPtr(1)})
		require.Error(t, err)
		assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
		assert.Equal(t, "statement timeout", err.Error())
	})

	t.Run("ProviderErrorKeepsKind", func(t *testing.T) {
		sel := new(mockSelector)
		provider := &stubProvider{err: apperr.Configuration("database.connect", errors.New("invalid sslmode"))}

		svc := puzzles.NewService(provider, sel, zap.NewNop())
		_, err := svc.GetPuzzles(context.Background(), puzzles.Request{Filters: map[string]any{}, Count: intPtr(1)})
		require.Error(t, err)
		assert.Equal(t, apperr.KindConfiguration, apperr.KindOf(err))
		sel.AssertNotCalled(t, "Select", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingFieldsAreValidationErrors", func(t *testing.T) {
		sel := new(mockSelector)
		provider := &stubProvider{}

		svc := puzzles.NewService(provider, sel, zap.NewNop())
		_, err := svc.GetPuzzles(context.Background(), puzzles.Request{})
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.Contains(t, err.Error(), "filters")
		assert.Contains(t, err.Error(), "count")
		assert.Equal(t, 0, provider.calls)
	})

	t.Run("CountRangeIsNotChecked", func(t *testing.T) {
		sel := new(mockSelector)
		sel.On("Select", mock.Anything, mock.Anything, mock.Anything, -2).Return([]puzzles.Record{}, nil)

		svc := puzzles.NewService(&stubProvider{}, sel, zap.NewNop())
		_, err := svc.GetPuzzles(context.Background(), puzzles.Request{Filters: map[string]any{}, Count: intPtr(-2)})
		assert.NoError(t, err)
	})
}
