package health_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"breezechess/feature/health"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleStatus(t *testing.T) {
	app := fiber.New()
	feature := health.NewFeature()
	require.NoError(t, feature.Load(app))
	assert.Equal(t, "health", feature.Name())
	assert.True(t, feature.IsEnabled())

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]string{"status": "Python service is running"}, body)
}
