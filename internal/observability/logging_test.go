package observability

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/schedule-service/internal/config"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "debug", Format: "console"}, "schedule-service")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	logger, err = NewLogger(config.LoggerConfig{Level: "bogus"}, "schedule-service")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestRequestLoggerUsesDomainStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	metrics := NewMetrics()

	app := fiber.New()
	app.Use(RequestLogger(zap.New(core), metrics))
	app.Get("/assignments/:id", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("assignment", nil)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/assignments/a1", nil), -1)
	require.NoError(t, err)
	_ = resp.Body.Close()

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(404), fields["status"])
	assert.Equal(t, "/assignments/a1", fields["path"])
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requestTotal.WithLabelValues("/assignments/:id", "GET", "404")))
}
