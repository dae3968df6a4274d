package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samyog8/community-events-backend/models"
)

// GetParticipants lists all participants for the admin view.
func GetParticipants(c *gin.Context) {
	var participants []models.Participant
	if err := db.Order("last_name, first_name").Find(&participants).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}

// GetParticipant retrieves a single participant by ID.
func GetParticipant(c *gin.Context) {
	id, ok := idParam(c, "participantId")
	if !ok {
		return
	}
	var participant models.Participant
	if err := db.First(&participant, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		return
	}
	c.JSON(http.StatusOK, participant)
}

// UpdateParticipant updates only the provided fields.
func UpdateParticipant(c *gin.Context) {
	id, ok := idParam(c, "participantId")
	if !ok {
		return
	}
	var participant models.Participant
	if err := db.First(&participant, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		return
	}

	var input struct {
		FirstName *string `json:"first_name" binding:"omitempty,min=2,max=100"`
		LastName  *string `json:"last_name" binding:"omitempty,min=2,max=100"`
		Phone     *string `json:"phone" binding:"omitempty,max=20"`
		IsAdmin   *bool   `json:"is_admin"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.FirstName != nil {
		participant.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		participant.LastName = *input.LastName
	}
	if input.Phone != nil {
		participant.Phone = *input.Phone
	}
	if input.IsAdmin != nil {
		participant.IsAdmin = *input.IsAdmin
	}

	if err := db.Save(&participant).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participant)
}

// DeleteParticipant removes a participant and, via cascade, their
// registrations.
func DeleteParticipant(c *gin.Context) {
	id, ok := idParam(c, "participantId")
	if !ok {
		return
	}
	res := db.Delete(&models.Participant{}, id)
	if res.Error != nil {
		respondError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Participant deleted"})
}

// ToggleParticipant flips the participant's active flag.
func ToggleParticipant(c *gin.Context) {
	id, ok := idParam(c, "participantId")
	if !ok {
		return
	}
	var participant models.Participant
	if err := db.First(&participant, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		return
	}
	active := models.ToggleStatus(&participant)
	if err := db.Save(&participant).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_active": active})
}

// ParticipantRegistrations lists a participant's registrations, newest
// event first.
func ParticipantRegistrations(c *gin.Context) {
	id, ok := idParam(c, "participantId")
	if !ok {
		return
	}
	var participant models.Participant
	if err := db.First(&participant, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		return
	}
	regs, err := registrationService.ByParticipant(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, regs)
}
