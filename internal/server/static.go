package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/learntech/courseplanner/internal/app/models/dto"
	"github.com/learntech/courseplanner/internal/app/pages"
	"github.com/learntech/courseplanner/internal/app/routes"
)

// StaticFallback serves requests no route matched: files under publicDir,
// the course planner app shell for its client-side routes, and otherwise a
// 404 page. Unknown API paths get a JSON 404.
func StaticFallback(publicDir, appDir string) gin.HandlerFunc {
	appIndex := filepath.Join(appDir, "index.html")

	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if strings.HasPrefix(path, routes.BasePath+"/") || path == routes.BasePath {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found"),
			))
			return
		}

		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			pages.NotFoundHandler(c)
			return
		}

		if file, ok := publicFile(publicDir, path); ok {
			c.File(file)
			return
		}

		if (path == strings.TrimSuffix(pages.AppPath, "/") || strings.HasPrefix(path, pages.AppPath)) && isFile(appIndex) {
			c.File(appIndex)
			return
		}

		pages.NotFoundHandler(c)
	}
}

// publicFile maps a request path to a regular file under root
func publicFile(root, urlPath string) (string, bool) {
	if root == "" {
		return "", false
	}
	clean := filepath.Clean("/" + urlPath)
	file := filepath.Join(root, filepath.FromSlash(clean))
	if !isFile(file) {
		return "", false
	}
	return file, true
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
