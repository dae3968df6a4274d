package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samyog8/community-events-backend/models"
	"github.com/samyog8/community-events-backend/services"
)

// eventResponse decorates an event with its computed availability. The
// numbers are recomputed from the loaded registrations on every request,
// never cached.
type eventResponse struct {
	models.Event
	AvailableSpots int    `json:"available_spots"`
	CanRegister    bool   `json:"can_register"`
	Availability   string `json:"availability"`
}

func toEventResponse(e models.Event) eventResponse {
	return eventResponse{
		Event:          e,
		AvailableSpots: e.AvailableSpots(),
		CanRegister:    e.CanRegister(),
		Availability:   models.AvailabilityStatus(&e),
	}
}

func toEventResponses(events []models.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}

// GetEvents lists events for the public, filtered by the optional query
// criteria and ordered soonest first.
func GetEvents(c *gin.Context) {
	var queryParams struct {
		Search       string `form:"q"`
		DateFrom     string `form:"date_from"`
		DateTo       string `form:"date_to"`
		VenueID      *uint  `form:"venue_id"`
		ActivityType string `form:"activity_type"`
		IncludePast  bool   `form:"include_past"`
	}
	if err := c.ShouldBindQuery(&queryParams); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	filter := services.EventFilter{
		Search:      queryParams.Search,
		VenueID:     queryParams.VenueID,
		IncludePast: queryParams.IncludePast,
	}
	if queryParams.DateFrom != "" {
		from, ok := parseDate(queryParams.DateFrom)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_from format. Use YYYY-MM-DD"})
			return
		}
		filter.DateFrom = &from
	}
	if queryParams.DateTo != "" {
		to, ok := parseDate(queryParams.DateTo)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_to format. Use YYYY-MM-DD"})
			return
		}
		filter.DateTo = &to
	}
	if queryParams.ActivityType != "" {
		t, ok := models.ParseActivityType(queryParams.ActivityType)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown activity_type"})
			return
		}
		filter.ActivityType = &t
	}

	events, err := eventService.Filter(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponses(events))
}

// GetEvent retrieves one event with venue, activities and availability.
func GetEvent(c *gin.Context) {
	id, ok := idParam(c, "eventId")
	if !ok {
		return
	}
	event, err := eventService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(*event))
}

// AdminGetEvents lists every event for the admin view, newest date first.
func AdminGetEvents(c *gin.Context) {
	events, err := eventService.All()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponses(events))
}

type eventInput struct {
	Name        string `json:"name" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"required,max=2000"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" binding:"required,datetime=15:04"`
	EndTime     string `json:"end_time" binding:"required,datetime=15:04"`
	MaxCapacity int    `json:"max_capacity" binding:"required,min=1,max=10000"`
	VenueID     *uint  `json:"venue_id"`
	IsActive    *bool  `json:"is_active"`
	ActivityIDs []uint `json:"activity_ids"`
}

func (in *eventInput) toServiceInput() services.EventInput {
	date, _ := parseDate(in.Date)
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return services.EventInput{
		Name:                in.Name,
		Description:         in.Description,
		Date:                date,
		StartTime:           in.StartTime,
		EndTime:             in.EndTime,
		MaxCapacity:         in.MaxCapacity,
		VenueID:             in.VenueID,
		IsActive:            active,
		SelectedActivityIDs: in.ActivityIDs,
	}
}

// CreateEvent creates a new event with its activity links.
func CreateEvent(c *gin.Context) {
	var input eventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := eventService.Create(input.toServiceInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEventResponse(*event))
}

// UpdateEvent rewrites an event and replaces its activity links.
func UpdateEvent(c *gin.Context) {
	id, ok := idParam(c, "eventId")
	if !ok {
		return
	}
	var input eventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := eventService.Update(id, input.toServiceInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(*event))
}

// DeleteEvent removes an event together with its registrations and links.
func DeleteEvent(c *gin.Context) {
	id, ok := idParam(c, "eventId")
	if !ok {
		return
	}
	if err := eventService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// ToggleEvent flips the event's active flag.
func ToggleEvent(c *gin.Context) {
	id, ok := idParam(c, "eventId")
	if !ok {
		return
	}
	active, err := eventService.ToggleStatus(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_active": active})
}

// AddEventActivity links an activity to an event.
func AddEventActivity(c *gin.Context) {
	eventID, ok := idParam(c, "eventId")
	if !ok {
		return
	}
	activityID, ok := idParam(c, "activityId")
	if !ok {
		return
	}
	added, err := eventService.AddActivity(eventID, activityID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !added {
		c.JSON(http.StatusConflict, gin.H{"error": "Activity already linked to this event"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Activity linked"})
}

// RemoveEventActivity unlinks an activity from an event.
func RemoveEventActivity(c *gin.Context) {
	eventID, ok := idParam(c, "eventId")
	if !ok {
		return
	}
	activityID, ok := idParam(c, "activityId")
	if !ok {
		return
	}
	removed, err := eventService.RemoveActivity(eventID, activityID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not linked to this event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Activity unlinked"})
}
