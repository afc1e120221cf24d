package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"housing-service/internal/middleware"
)

// Routes is implemented by every handler in this package.
type Routes interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// NewRouter builds the gin engine: request ids, access log, recovery and
// caller resolution, then each handler's routes.
func NewRouter(jwtSecret, jwtAlg string, handlers ...Routes) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), gin.Logger(), gin.Recovery(), middleware.Authenticate(jwtSecret, jwtAlg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/")
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}
	return r
}

// TrimTrailingSlash routes "/favorites/" and "/favorites" to the same handler
// without a redirect, so clients using slash-terminated paths keep their method and body.
func TrimTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p := r.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") {
			r.URL.Path = strings.TrimRight(p, "/")
			if r.URL.Path == "" {
				r.URL.Path = "/"
			}
			r.URL.RawPath = ""
		}
		next.ServeHTTP(w, r)
	})
}
