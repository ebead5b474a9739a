// Package router wires the mock backend's routes. Paths mirror the
// production MSWT API exactly, including the doubled rating segment, so the
// client exercises the same URLs in development as in production.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/handlers"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/middleware"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/mockdata"
)

// Config carries the mock backend's tunables.
type Config struct {
	JWTSecret  []byte
	LoginShape handlers.LoginShape
}

// Setup initializes the routing for the mock backend.
func Setup(engine *gin.Engine, store *mockdata.Store, cfg Config) {
	authHandler := handlers.NewAuthHandler(store, cfg.JWTSecret, cfg.LoginShape)
	scheduleHandler := handlers.NewScheduleHandler(store)
	assetHandler := handlers.NewAssetHandler(store)

	// Login is the only unauthenticated route.
	engine.POST("/users/login", authHandler.LoginUser)

	authenticated := engine.Group("")
	authenticated.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		SetupUserRoutes(authenticated, authHandler)
		SetupScheduleRoutes(authenticated, scheduleHandler)
		SetupAssetRoutes(authenticated, assetHandler)
	}
}
