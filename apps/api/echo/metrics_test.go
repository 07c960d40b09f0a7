package echoapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/attendo/core"
)

func TestMetrics_recoveredPanic(t *testing.T) {
	logger := new(errLogger)
	s := NewServer(ServerDeps{
		Conf:   &core.Config{AppName: "Attendo"}, // neither debug nor test: Recover is on
		Logger: logger,
	})
	s.app.GET("/boom", func(echo.Context) error { panic("boom") })

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, logger.msgs)

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `attendo_http_requests_total{code="500",method="GET",route="/boom"} 1`)
}
