package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samyog8/community-events-backend/models"
	"github.com/samyog8/community-events-backend/services"
)

type activityInput struct {
	Name            string `json:"name" binding:"required,min=3,max=200"`
	Description     string `json:"description" binding:"omitempty,max=1000"`
	Type            string `json:"type" binding:"required,activitytype"`
	DurationMinutes int    `json:"duration_minutes" binding:"min=0,max=1440"`
	IsActive        *bool  `json:"is_active"`
}

func (in *activityInput) toServiceInput() services.ActivityInput {
	activityType, _ := models.ParseActivityType(in.Type)
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return services.ActivityInput{
		Name:            in.Name,
		Description:     in.Description,
		Type:            activityType,
		DurationMinutes: in.DurationMinutes,
		IsActive:        active,
	}
}

// GetActivities lists activities; pass active=true to restrict to active
// ones.
func GetActivities(c *gin.Context) {
	activities, err := activityService.List(c.Query("active") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func GetActivity(c *gin.Context) {
	id, ok := idParam(c, "activityId")
	if !ok {
		return
	}
	activity, err := activityService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func CreateActivity(c *gin.Context) {
	var input activityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	activity, err := activityService.Create(input.toServiceInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func UpdateActivity(c *gin.Context) {
	id, ok := idParam(c, "activityId")
	if !ok {
		return
	}
	var input activityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	activity, err := activityService.Update(id, input.toServiceInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func DeleteActivity(c *gin.Context) {
	id, ok := idParam(c, "activityId")
	if !ok {
		return
	}
	if err := activityService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted"})
}

func ToggleActivity(c *gin.Context) {
	id, ok := idParam(c, "activityId")
	if !ok {
		return
	}
	active, err := activityService.ToggleStatus(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_active": active})
}
