// README: HTTP router registration.
package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cabnav/internal/http/handlers"
	"cabnav/internal/http/middleware"
	"cabnav/internal/modules/compare"
	"cabnav/internal/modules/history"
	"cabnav/internal/modules/prefs"
)

func NewRouter(
	orchestrator *compare.Orchestrator,
	extractor *prefs.Extractor,
	historySvc *history.Service,
	logger *log.Logger,
) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging(logger))

	compareHandler := handlers.NewCompareHandler(orchestrator, extractor)
	r.POST("/api/compare", compareHandler.Compare)
	r.POST("/api/book", compareHandler.Book)

	if historySvc != nil {
		historyHandler := handlers.NewHistoryHandler(historySvc)
		r.GET("/api/history/average", historyHandler.Average)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
