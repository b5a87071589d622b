package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}

func TestHealthEndpoint(t *testing.T) {
	testCases := []struct {
		name           string
		deps           []Pinger
		expectedCode   int
		expectedStatus string
	}{
		{
			name:           "all_dependencies_up",
			deps:           []Pinger{stubPinger{}, stubPinger{}},
			expectedCode:   fiber.StatusOK,
			expectedStatus: "UP",
		},
		{
			name:           "database_down",
			deps:           []Pinger{stubPinger{err: errors.New("connection refused")}},
			expectedCode:   fiber.StatusServiceUnavailable,
			expectedStatus: "DOWN",
		},
		{
			name:           "notifier_down",
			deps:           []Pinger{stubPinger{}, stubPinger{err: errors.New("queue unavailable")}},
			expectedCode:   fiber.StatusServiceUnavailable,
			expectedStatus: "DOWN",
		},
		{
			name:           "no_optional_dependencies",
			deps:           []Pinger{stubPinger{}},
			expectedCode:   fiber.StatusOK,
			expectedStatus: "UP",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", NewHealthHandler(tc.deps...).Health)

			req := httptest.NewRequest("GET", "/health", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedCode, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var decoded map[string]string
			require.NoError(t, json.Unmarshal(raw, &decoded))
			assert.Equal(t, tc.expectedStatus, decoded["status"])
		})
	}
}
