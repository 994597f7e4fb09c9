package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"breezechess/core/apperr"
	"breezechess/core/config"
	"breezechess/core/middleware/rayid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type failingProvider struct{}

func (failingProvider) DB(ctx context.Context) (*gorm.DB, error) {
	return nil, apperr.Upstream("database.connect", errors.New("connection refused"))
}

func TestNewApp(t *testing.T) {
	app, err := newApp(&config.Config{}, zap.NewNop(), failingProvider{})
	require.NoError(t, err)

	t.Run("HealthWithoutDatabase", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(rayid.Header))

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Python service is running", body["status"])
	})

	t.Run("PuzzlesWithDatabaseDown", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/getPuzzles", strings.NewReader(`{"filters":{},"count":1}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "connection refused", body["detail"])
		assert.Equal(t, "upstream", body["kind"])
	})
}

func TestRunSeedPieces_MissingRoot(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	seedRoot = filepath.Join(t.TempDir(), "missing")
	seedBucket = "test-bucket"
	defer func() { seedRoot, seedBucket = "", "" }()

	err = runSeedPieces(seedPiecesCmd, nil)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConfiguration, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "does not exist")
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["start"])
	assert.True(t, names["seed"])

	sub, _, err := RootCmd.Find([]string{"seed", "pieces"})
	require.NoError(t, err)
	assert.Equal(t, "pieces", sub.Name())
}
