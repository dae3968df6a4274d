package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/samyog8/community-events-backend/controllers"
	"github.com/samyog8/community-events-backend/middleware"
)

// SetupRoutes registers the public API and the token-guarded admin API.
// controllers.Init must have been called first.
func SetupRoutes(router *gin.Engine) {
	router.POST("/auth/login", controllers.Login)

	router.GET("/events", controllers.GetEvents)
	router.GET("/events/:eventId", controllers.GetEvent)
	router.POST("/events/:eventId/register", controllers.RegisterForEvent)

	router.GET("/registrations", controllers.MyRegistrations)
	router.POST("/registrations/:registrationId/cancel", controllers.CancelRegistration)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(controllers.Tokens()), middleware.AdminOnlyMiddleware())
	{
		admin.GET("/dashboard", controllers.Dashboard)

		admin.GET("/events", controllers.AdminGetEvents)
		admin.POST("/events", controllers.CreateEvent)
		admin.PUT("/events/:eventId", controllers.UpdateEvent)
		admin.DELETE("/events/:eventId", controllers.DeleteEvent)
		admin.POST("/events/:eventId/toggle", controllers.ToggleEvent)
		admin.POST("/events/:eventId/activities/:activityId", controllers.AddEventActivity)
		admin.DELETE("/events/:eventId/activities/:activityId", controllers.RemoveEventActivity)
		admin.GET("/events/:eventId/registrations", controllers.EventRegistrations)

		admin.GET("/registrations/pending", controllers.PendingRegistrations)
		admin.GET("/registrations/:registrationId", controllers.GetRegistration)
		admin.POST("/registrations/:registrationId/confirm", controllers.ConfirmRegistration)
		admin.POST("/registrations/:registrationId/reject", controllers.RejectRegistration)
		admin.POST("/registrations/:registrationId/attend", controllers.MarkRegistrationAttended)
		admin.POST("/registrations/:registrationId/cancel", controllers.CancelRegistration)

		admin.GET("/venues", controllers.GetVenues)
		admin.POST("/venues", controllers.CreateVenue)
		admin.GET("/venues/:venueId", controllers.GetVenue)
		admin.PUT("/venues/:venueId", controllers.UpdateVenue)
		admin.DELETE("/venues/:venueId", controllers.DeleteVenue)
		admin.POST("/venues/:venueId/toggle", controllers.ToggleVenue)
		admin.GET("/venues/:venueId/availability", controllers.CheckVenueAvailability)

		admin.GET("/activities", controllers.GetActivities)
		admin.POST("/activities", controllers.CreateActivity)
		admin.GET("/activities/:activityId", controllers.GetActivity)
		admin.PUT("/activities/:activityId", controllers.UpdateActivity)
		admin.DELETE("/activities/:activityId", controllers.DeleteActivity)
		admin.POST("/activities/:activityId/toggle", controllers.ToggleActivity)

		admin.GET("/participants", controllers.GetParticipants)
		admin.GET("/participants/:participantId", controllers.GetParticipant)
		admin.PUT("/participants/:participantId", controllers.UpdateParticipant)
		admin.DELETE("/participants/:participantId", controllers.DeleteParticipant)
		admin.POST("/participants/:participantId/toggle", controllers.ToggleParticipant)
		admin.GET("/participants/:participantId/registrations", controllers.ParticipantRegistrations)
	}
}
