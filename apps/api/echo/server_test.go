package echoapi_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServer_home(t *testing.T) {
	env := setup(t)

	rec := env.do(http.MethodGet, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to Attendo API!", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_notFound(t *testing.T) {
	env := setup(t)

	runHTTPTests(t, env, []httpTest{
		{name: "unknown route", method: http.MethodGet, path: "/v1/lol", wantCode: http.StatusNotFound, wantData: []byte(`{"error":"Not Found"}`)},
		{name: "trailing slash", method: http.MethodGet, path: "/v1/students/1/", wantCode: http.StatusOK},
	})
}

func TestServer_metrics(t *testing.T) {
	env := setup(t)

	env.do(http.MethodGet, "/")
	env.do(http.MethodGet, "/v1/students/999")
	env.do(http.MethodPost, "/v1/attendance/mark", []byte(`{"studentId": 3, "status": "tardy"}`))

	rec := env.do(http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	for _, want := range []string{
		`attendo_http_requests_total{code="200",method="GET",route="/"} 1`,
		`attendo_http_requests_total{code="404",method="GET",route="/v1/students/:id"} 1`,
		`attendo_http_requests_total{code="200",method="POST",route="/v1/attendance/mark"} 1`,
		`attendo_attendance_marks_total{status="tardy"} 1`,
		`attendo_http_request_duration_seconds_count{method="GET",route="/"} 1`,
		"go_goroutines",
	} {
		assert.True(t, strings.Contains(body, want), "metrics missing %q", want)
	}
}
