package routes

import (
	"github.com/gin-gonic/gin"

	inquiryhandlers "courtside/internal/interfaces/http/handlers/inquiry"
	"courtside/internal/interfaces/http/middleware"
)

type InquiryRouteConfig struct {
	InquiryHandler *inquiryhandlers.InquiryHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupInquiryRoutes(engine *gin.Engine, config *InquiryRouteConfig) {
	// Owner-facing surface. Every route requires an authenticated account;
	// ownership itself is enforced in the use cases.
	inquiries := engine.Group("/inquiries")
	inquiries.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		inquiries.POST("",
			config.InquiryHandler.OpenInquiry)
		inquiries.GET("",
			config.InquiryHandler.ListMine)

		inquiries.GET("/:sid/messages",
			config.InquiryHandler.GetTimeline)
		inquiries.POST("/:sid/messages",
			config.InquiryHandler.AppendOwnerMessage)
		inquiries.GET("/:sid/unread",
			config.InquiryHandler.GetUnreadCounts)
		inquiries.POST("/:sid/read",
			config.InquiryHandler.MarkRead)

		inquiries.GET("/:sid",
			config.InquiryHandler.GetInquiry)
	}

	// Moderation surface. The moderator flag comes from the verified token,
	// so RequireModerator is a pure context check.
	moderation := engine.Group("/moderation/inquiries")
	moderation.Use(config.AuthMiddleware.RequireAuth(), config.AuthMiddleware.RequireModerator())
	{
		moderation.GET("",
			config.InquiryHandler.ListDashboard)

		moderation.GET("/:sid/messages",
			config.InquiryHandler.GetTimeline)
		moderation.POST("/:sid/messages",
			config.InquiryHandler.AppendModeratorMessage)
		moderation.GET("/:sid/unread",
			config.InquiryHandler.GetUnreadCounts)
		moderation.POST("/:sid/read",
			config.InquiryHandler.MarkRead)
		moderation.POST("/:sid/moderators",
			config.InquiryHandler.AssignSelf)
		moderation.DELETE("/:sid/moderators",
			config.InquiryHandler.UnassignSelf)

		moderation.GET("/:sid",
			config.InquiryHandler.GetInquiry)
		moderation.PATCH("/:sid",
			config.InquiryHandler.UpdateInquiry)
	}
}
