package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samyog8/community-events-backend/services"
)

// RegisterForEvent handles the public registration form.
func RegisterForEvent(c *gin.Context) {
	eventID, ok := idParam(c, "eventId")
	if !ok {
		return
	}
	var input struct {
		FirstName string `json:"first_name" binding:"required,min=2,max=100"`
		LastName  string `json:"last_name" binding:"required,min=2,max=100"`
		Email     string `json:"email" binding:"required,email,max=255"`
		Phone     string `json:"phone" binding:"omitempty,max=20"`
		Notes     string `json:"notes" binding:"omitempty,max=500"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reg, err := registrationService.RegisterForEvent(services.RegisterInput{
		EventID:   eventID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Notes:     input.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reg)
}

// MyRegistrations lists the registrations belonging to an email address.
// An unknown email yields an empty list.
func MyRegistrations(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter required"})
		return
	}
	regs, err := registrationService.ByEmail(email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, regs)
}

// transitionHandler builds a handler around one status transition. A
// transition that did not apply (unknown registration or wrong current
// state) is a normal outcome reported as a conflict, not an error.
func transitionHandler(apply func(uint) (bool, error), applied string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "registrationId")
		if !ok {
			return
		}
		done, err := apply(id)
		if err != nil {
			respondError(c, err)
			return
		}
		if !done {
			c.JSON(http.StatusConflict, gin.H{"error": "Registration not found or transition not allowed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": applied})
	}
}

// CancelRegistration is the public cancel endpoint; Attended registrations
// cannot be cancelled.
func CancelRegistration(c *gin.Context) {
	transitionHandler(registrationService.Cancel, "Registration cancelled")(c)
}

// ConfirmRegistration moves a pending registration to Confirmed.
func ConfirmRegistration(c *gin.Context) {
	transitionHandler(registrationService.Confirm, "Registration confirmed")(c)
}

// RejectRegistration moves a pending registration to Rejected.
func RejectRegistration(c *gin.Context) {
	transitionHandler(registrationService.Reject, "Registration rejected")(c)
}

// MarkRegistrationAttended moves a confirmed registration to Attended.
func MarkRegistrationAttended(c *gin.Context) {
	transitionHandler(registrationService.MarkAttended, "Registration marked attended")(c)
}

// PendingRegistrations lists registrations awaiting triage.
func PendingRegistrations(c *gin.Context) {
	regs, err := registrationService.Pending()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, regs)
}

// EventRegistrations lists an event's registrations for the admin view.
func EventRegistrations(c *gin.Context) {
	eventID, ok := idParam(c, "eventId")
	if !ok {
		return
	}
	regs, err := registrationService.ByEvent(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, regs)
}

// GetRegistration retrieves one registration with participant and event.
func GetRegistration(c *gin.Context) {
	id, ok := idParam(c, "registrationId")
	if !ok {
		return
	}
	reg, err := registrationService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}
