// Package controllers holds the gin handlers. Init wires the shared
// database handle, services and auth collaborators once at startup.
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/samyog8/community-events-backend/apperrors"
	"github.com/samyog8/community-events-backend/config"
	"github.com/samyog8/community-events-backend/models"
	"github.com/samyog8/community-events-backend/services"
	"github.com/samyog8/community-events-backend/utils"
)

var (
	db     *gorm.DB
	cfg    *config.Config
	tokens *utils.TokenManager

	eventService        *services.EventService
	registrationService *services.RegistrationService
	venueService        *services.VenueService
	activityService     *services.ActivityService
)

// Init wires the controllers to their collaborators and registers custom
// binding validators.
func Init(database *gorm.DB, conf *config.Config, tokenManager *utils.TokenManager) {
	db = database
	cfg = conf
	tokens = tokenManager

	eventService = services.NewEventService(database)
	registrationService = services.NewRegistrationService(database)
	venueService = services.NewVenueService(database)
	activityService = services.NewActivityService(database)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("activitytype", func(fl validator.FieldLevel) bool {
			_, ok := models.ParseActivityType(fl.Field().String())
			return ok
		})
	}
}

// Tokens exposes the token manager for route setup.
func Tokens() *utils.TokenManager { return tokens }

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

// idParam parses a numeric path parameter, writing a 400 response itself
// when the value is not a positive integer.
func idParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service failures onto HTTP statuses: NotFound to 404,
// Validation to 400, Duplicate and BusinessRule to 409, anything else to a
// logged 500.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsDuplicate(err), apperrors.IsBusinessRule(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
