package router

import (
	"net/http"

	"gamereview/backend/internal/handler"
	"gamereview/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Options toggles the optional routes.
type Options struct {
	Swagger bool
}

// New assembles the gin engine with middleware, system routes and every resource route.
func New(h *handler.Handler, log *zap.Logger, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
	)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Index for Game/Review/User API")
	})

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	h.Register(router)

	return router
}
