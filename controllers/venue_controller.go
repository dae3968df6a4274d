package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samyog8/community-events-backend/services"
)

type venueInput struct {
	Name        string `json:"name" binding:"required,min=3,max=200"`
	Address     string `json:"address" binding:"required,max=500"`
	City        string `json:"city" binding:"omitempty,max=100"`
	PostCode    string `json:"post_code" binding:"omitempty,max=20"`
	Capacity    int    `json:"capacity" binding:"required,min=1,max=100000"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	IsActive    *bool  `json:"is_active"`
}

func (in *venueInput) toServiceInput() services.VenueInput {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return services.VenueInput{
		Name:        in.Name,
		Address:     in.Address,
		City:        in.City,
		PostCode:    in.PostCode,
		Capacity:    in.Capacity,
		Description: in.Description,
		IsActive:    active,
	}
}

// GetVenues lists venues; pass active=true to restrict to active ones.
func GetVenues(c *gin.Context) {
	venues, err := venueService.List(c.Query("active") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, venues)
}

func GetVenue(c *gin.Context) {
	id, ok := idParam(c, "venueId")
	if !ok {
		return
	}
	venue, err := venueService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, venue)
}

func CreateVenue(c *gin.Context) {
	var input venueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	venue, err := venueService.Create(input.toServiceInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, venue)
}

func UpdateVenue(c *gin.Context) {
	id, ok := idParam(c, "venueId")
	if !ok {
		return
	}
	var input venueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	venue, err := venueService.Update(id, input.toServiceInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, venue)
}

func DeleteVenue(c *gin.Context) {
	id, ok := idParam(c, "venueId")
	if !ok {
		return
	}
	if err := venueService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Venue deleted"})
}

func ToggleVenue(c *gin.Context) {
	id, ok := idParam(c, "venueId")
	if !ok {
		return
	}
	active, err := venueService.ToggleStatus(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_active": active})
}

// CheckVenueAvailability reports whether a venue is free for a window,
// optionally excluding the event being edited. Advisory only.
func CheckVenueAvailability(c *gin.Context) {
	id, ok := idParam(c, "venueId")
	if !ok {
		return
	}
	var queryParams struct {
		Date           string `form:"date" binding:"required"`
		Start          string `form:"start" binding:"required"`
		End            string `form:"end" binding:"required"`
		ExcludeEventID uint   `form:"exclude_event_id"`
	}
	if err := c.ShouldBindQuery(&queryParams); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date, start and end query parameters required"})
		return
	}
	date, ok := parseDate(queryParams.Date)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	available, err := venueService.CheckAvailability(id, date, queryParams.Start, queryParams.End, queryParams.ExcludeEventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}
