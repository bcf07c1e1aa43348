package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/learntech/courseplanner/internal/app/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticFallback(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	public := t.TempDir()
	appDir := filepath.Join(public, "apps", "course-planner")
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(public, "robots.txt"), []byte("User-agent: *"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "index.html"), []byte("<div id=app></div>"), 0o644))

	r := gin.New()
	r.GET("/", pages.LandingHandler)
	r.NoRoute(StaticFallback(public, appDir))

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/", http.StatusOK, pages.AppTitle},
		{"/robots.txt", http.StatusOK, "User-agent: *"},
		{"/course-planner/matrix/2024", http.StatusOK, "<div id=app></div>"},
		{"/course-planner", http.StatusOK, "<div id=app></div>"},
		{"/course-plannerx/matrix", http.StatusNotFound, "Page not found"},
		{"/../../etc/passwd", http.StatusNotFound, "Page not found"},
		{"/missing", http.StatusNotFound, "Page not found"},
		{"/api/course-planner/v1/nothing", http.StatusNotFound, `"code":"RES_001"`},
	}

	for _, tt := range tests {
		w := get(tt.path)
		assert.Equal(t, tt.wantStatus, w.Code, tt.path)
		assert.Contains(t, w.Body.String(), tt.wantBody, tt.path)
	}
}
