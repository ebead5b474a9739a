package router

import (
	"github.com/gin-gonic/gin"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/handlers"
)

// SetupUserRoutes registers the authenticated user routes.
func SetupUserRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.GET("/users/:id", authHandler.GetUser)
	group.POST("/users/logout", authHandler.LogoutUser)
}

// SetupScheduleRoutes registers the schedule-detail routes.
func SetupScheduleRoutes(group *gin.RouterGroup, scheduleHandler *handlers.ScheduleHandler) {
	group.GET("/scheduledetails/user/:id", scheduleHandler.GetSchedulesByUser)
	group.PUT("/scheduledetails/:id", scheduleHandler.UpdateScheduleStatus)
	group.PUT("/scheduledetails/scheduledetails/rating/:id", scheduleHandler.SubmitRating)
}

// SetupAssetRoutes registers the inventory and incident-report routes.
func SetupAssetRoutes(group *gin.RouterGroup, assetHandler *handlers.AssetHandler) {
	group.GET("/restrooms", assetHandler.GetRestrooms)
	group.GET("/trashbins", assetHandler.GetTrashBins)
	group.GET("/sensors", assetHandler.GetSensors)
	group.GET("/reports/user/:id", assetHandler.GetReportsByUser)
	group.POST("/reports", assetHandler.CreateReport)
}
