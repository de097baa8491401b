package tour

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tourguide/internal/app/domain/tracking"
	"github.com/FACorreiaa/go-tourguide/internal/app/domain/user"
	"github.com/FACorreiaa/go-tourguide/internal/app/models"
)

// Handler exposes the tour operations over HTTP. Each endpoint maps 1:1
// onto a core operation and only serializes its result.
type Handler struct {
	logger  *zap.Logger
	service *Service
	users   *user.Directory
	tracker *tracking.Service
}

// NewHandler creates the HTTP handler set.
func NewHandler(service *Service, users *user.Directory, tracker *tracking.Service, logger *zap.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		users:   users,
		tracker: tracker,
	}
}

// Index greets, mostly as a liveness hint for humans.
func (h *Handler) Index(c *gin.Context) {
	c.String(http.StatusOK, "Greetings from TourGuide!")
}

// GetLocation returns the user's current (last known or freshly tracked)
// position.
func (h *Handler) GetLocation(c *gin.Context) {
	u, ok := h.lookupUser(c)
	if !ok {
		return
	}
	visited, err := h.tracker.UserLocation(c.Request.Context(), u)
	if err != nil {
		h.logger.Error("Failed to get user location",
			zap.String("userName", u.UserName),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "location unavailable"})
		return
	}
	c.JSON(http.StatusOK, visited.Location)
}

// GetNearbyAttractions returns the five closest attractions to the user's
// current position.
func (h *Handler) GetNearbyAttractions(c *gin.Context) {
	u, ok := h.lookupUser(c)
	if !ok {
		return
	}
	visited, err := h.tracker.UserLocation(c.Request.Context(), u)
	if err != nil {
		h.logger.Error("Failed to get user location",
			zap.String("userName", u.UserName),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "location unavailable"})
		return
	}
	nearby, err := h.service.NearbyAttractions(c.Request.Context(), visited)
	if err != nil {
		h.logger.Error("Failed to rank nearby attractions",
			zap.String("userName", u.UserName),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "nearby attractions unavailable"})
		return
	}
	c.JSON(http.StatusOK, nearby)
}

// GetRewards lists the user's rewards.
func (h *Handler) GetRewards(c *gin.Context) {
	u, ok := h.lookupUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.UserRewards(u))
}

// GetAllCurrentLocations returns every user's last known location keyed by
// user id.
func (h *Handler) GetAllCurrentLocations(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.AllCurrentLocations(c.Request.Context()))
}

// GetTripDeals quotes trip offers for the user.
func (h *Handler) GetTripDeals(c *gin.Context) {
	u, ok := h.lookupUser(c)
	if !ok {
		return
	}
	offers, err := h.service.TripDeals(c.Request.Context(), u)
	if err != nil {
		h.logger.Error("Failed to quote trip deals",
			zap.String("userName", u.UserName),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "trip deals unavailable"})
		return
	}
	c.JSON(http.StatusOK, offers)
}

// ListUsers returns the directory as a summary list.
func (h *Handler) ListUsers(c *gin.Context) {
	all := h.users.All()
	type summary struct {
		ID       uuid.UUID `json:"userId"`
		UserName string    `json:"userName"`
		Email    string    `json:"email"`
	}
	out := make([]summary, 0, len(all))
	for _, u := range all {
		out = append(out, summary{ID: u.ID, UserName: u.UserName, Email: u.Email})
	}
	c.JSON(http.StatusOK, out)
}

// AddUser inserts a user; a duplicate name is a no-op reported as a
// conflict.
func (h *Handler) AddUser(c *gin.Context) {
	var req struct {
		UserName string `json:"userName" binding:"required"`
		Phone    string `json:"phone"`
		Email    string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u := models.NewUser(uuid.New(), req.UserName, req.Phone, req.Email)
	if !h.users.Add(u) {
		c.JSON(http.StatusConflict, gin.H{"error": "user name already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"userId": u.ID, "userName": u.UserName})
}

// UpdatePreferences replaces the trip preferences of the user with the
// given id.
func (h *Handler) UpdatePreferences(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	u, err := h.users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	var prefs models.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u.SetPreferences(prefs)
	h.logger.Info("User preferences updated", zap.String("userId", userID.String()))
	c.JSON(http.StatusOK, prefs)
}

// lookupUser resolves the userName query parameter, writing the error
// response itself on failure.
func (h *Handler) lookupUser(c *gin.Context) (*models.User, bool) {
	userName := c.Query("userName")
	if userName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userName is required"})
		return nil, false
	}
	u, err := h.users.GetByName(userName)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return u, true
}
