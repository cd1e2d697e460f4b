package site

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewServer returns a gin engine that serves the page and its assets the
// way a static host would serve an export, under basePath.
func NewServer(r *Renderer, basePath string, static fs.FS) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(basePath))
	engine.SetHTMLTemplate(r.Template())

	page := func(c *gin.Context) {
		c.HTML(http.StatusOK, IndexTemplate, r.Data())
	}

	engine.GET(basePath+"/", page)
	engine.GET(basePath+"/index.html", page)
	if basePath != "" {
		engine.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, basePath+"/")
		})
	}

	engine.StaticFS(basePath+"/static", http.FS(static))

	engine.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, NotFoundTemplate, r.Data())
	})

	return engine
}
