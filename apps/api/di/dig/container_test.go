package dig_container

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/attendo/apps/api/echo"
	"github.com/trezcool/attendo/core/student"
)

func TestNew(t *testing.T) {
	t.Setenv("ENV", "TEST")

	c := New()
	err := c.Invoke(func(server *echoapi.Server, svc *student.Service) {
		students, err := svc.QueryAll()
		require.NoError(t, err)
		assert.Len(t, students, 12)

		req := httptest.NewRequest(http.MethodGet, "/v1/students/1", nil)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
	require.NoError(t, err)
}

func TestNew_badFixtures(t *testing.T) {
	t.Setenv("ENV", "TEST")
	t.Setenv("TEST_FIXTURESSTUDENTSPATH", "/nope/students.json")

	err := New().Invoke(func(*echoapi.Server) {})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "loading fixtures")
	}
}
