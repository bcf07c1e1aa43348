// Package pages renders the server-side HTML pages
package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learntech/courseplanner/internal/pkg/logger"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// AppTitle is the title of the landing page
const AppTitle = "Learning Technology App"

// AppPath is where the course planner single-page app is served
const AppPath = "/course-planner/"

func page(title string, body ...Node) Node {
	return HTML5(HTML5Props{
		Title:    title,
		Language: "en",
		Head: []Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Link(Rel("stylesheet"), Href("/css/styles.css")),
		},
		Body: []Node{Main(Class("container"), Group(body))},
	})
}

// Landing is the root page linking to the course planner
func Landing() Node {
	return page(AppTitle,
		H1(Text(AppTitle)),
		P(Text("Plan course offerings across programs, campuses and fiscal years.")),
		A(Href(AppPath), Class("button"), Text("Open the course planner")),
	)
}

// NotFound is rendered for unknown paths
func NotFound(path string) Node {
	return page("Page not found | "+AppTitle,
		H1(Text("Page not found")),
		P(Textf("Nothing lives at %s.", path)),
		A(Href("/"), Text("Back to the start page")),
	)
}

// Render writes node as an HTML response
func Render(c *gin.Context, status int, node Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := node.Render(c.Writer); err != nil {
		logger.Ctx(c.Request.Context()).Error().Err(err).Msg("Failed to render page")
	}
}

// LandingHandler serves the landing page
func LandingHandler(c *gin.Context) {
	Render(c, http.StatusOK, Landing())
}

// NotFoundHandler serves the 404 page
func NotFoundHandler(c *gin.Context) {
	Render(c, http.StatusNotFound, NotFound(c.Request.URL.Path))
}
