package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jessndots/express-jobly/internal/apperrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustRegister(t *testing.T) {
	registry := prometheus.NewRegistry()
	MustRegister(registry)
}

func TestObserveQuery(t *testing.T) {
	ObserveQuery("companies", "get", time.Now(), nil)
	ObserveQuery("companies", "get", time.Now(), apperrors.NotFound("COMPANY_NOT_FOUND", "No company: x"))
	ObserveQuery("companies", "get", time.Now(), errors.New("conn refused"))

	assert.Equal(t, 1.0, testutil.ToFloat64(queryCounter.WithLabelValues("companies", "get", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(queryCounter.WithLabelValues("companies", "get", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(queryCounter.WithLabelValues("companies", "get", "error")))
}

func TestMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/ping/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusTeapot)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, 1.0, testutil.ToFloat64(requestCounter.WithLabelValues("GET", "/ping/:id", "418")))
}
