package community

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/models"
)

func TestGetPath(t *testing.T) {
	env := newTestEnv()
	env.paths = newFakePaths(&models.LearningPath{ID: "p1", Title: "PC Building Fundamentals"})
	router := env.router(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/learning-paths/p1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "PC Building Fundamentals")
}

func TestGetPathNotFound(t *testing.T) {
	env := newTestEnv()
	router := env.router(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/learning-paths/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEnrollIncrementsEveryTime(t *testing.T) {
	env := newTestEnv()
	env.paths = newFakePaths(&models.LearningPath{ID: "p1", Enrolled: 230})
	router := env.router(testUser("u1", "Ada"))

	// Enrollment has no per-user uniqueness: the same caller enrolling
	// twice double-counts.
	for i := 1; i <= 2; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/learning-paths/p1/enroll", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var path models.LearningPath
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &path))
		assert.Equal(t, 230+i, path.Enrolled)
	}
}

func TestEnrollNotFound(t *testing.T) {
	env := newTestEnv()
	router := env.router(testUser("u1", "Ada"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/learning-paths/missing/enroll", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEnrollRequiresAuth(t *testing.T) {
	env := newTestEnv()
	env.paths = newFakePaths(&models.LearningPath{ID: "p1"})
	router := env.router(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/learning-paths/p1/enroll", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
