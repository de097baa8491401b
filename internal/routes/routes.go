package routes

import (
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tourguide/internal/app/domain/tour"
)

// Setup registers the HTTP surface. Every endpoint maps 1:1 onto a core
// operation; the request layer only resolves users and serializes results.
func Setup(r *gin.Engine, h *tour.Handler, log *zap.Logger) {
	r.GET("/", h.Index)
	r.GET("/getLocation", h.GetLocation)
	r.GET("/getNearbyAttractions", h.GetNearbyAttractions)
	r.GET("/getRewards", h.GetRewards)
	r.GET("/getAllCurrentLocations", h.GetAllCurrentLocations)
	r.GET("/getTripDeals", h.GetTripDeals)

	users := r.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.POST("", h.AddUser)
		users.POST("/:userId/preferences", h.UpdatePreferences)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	pprof.Register(r)

	log.Info("Routes registered")
}
