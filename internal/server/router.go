package server

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tourguide/internal/app/middleware"
	"github.com/FACorreiaa/go-tourguide/internal/routes"
)

// SetupRouter configures and returns the Gin router with all middleware and routes
func SetupRouter(s *Server, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		UTC:        true,
		TimeFormat: time.RFC3339,
	}))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middleware.CORSMiddleware())

	routes.Setup(r, s.Handlers(), logger)

	return r
}
