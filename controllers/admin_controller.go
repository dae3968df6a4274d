package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samyog8/community-events-backend/models"
)

// Dashboard returns the entity counts shown on the admin landing page.
func Dashboard(c *gin.Context) {
	var events, participants, venues, activities, registrations, pending int64

	db.Model(&models.Event{}).Count(&events)
	db.Model(&models.Participant{}).Count(&participants)
	db.Model(&models.Venue{}).Count(&venues)
	db.Model(&models.Activity{}).Count(&activities)
	db.Model(&models.Registration{}).Count(&registrations)
	db.Model(&models.Registration{}).Where("status = ?", models.StatusPending).Count(&pending)

	c.JSON(http.StatusOK, gin.H{
		"events":                events,
		"participants":          participants,
		"venues":                venues,
		"activities":            activities,
		"registrations":         registrations,
		"pending_registrations": pending,
	})
}
