package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/handlers"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/mockdata"
	router_pkg "github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/router"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/pkg/utils"
)

func main() {
	utils.InitLogger()
	utils.LoadDotenv()

	jwtSecret := utils.Getenv("MSWT_MOCK_JWT_SECRET", "mswt-mock-secret-do-not-use-in-prod")
	loginShape := handlers.LoginShape(utils.Getenv("MSWT_MOCK_LOGIN_SHAPE", string(handlers.ShapeTokenAndUser)))

	store := mockdata.NewSeeded()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.GinLogger())

	// CORS so a locally served web build of the app can talk to the mock.
	corsAllowedOriginsEnv := os.Getenv("MSWT_MOCK_CORS_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:19006"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	router.Use(cors.New(config))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router_pkg.Setup(router, store, router_pkg.Config{
		JWTSecret:  []byte(jwtSecret),
		LoginShape: loginShape,
	})

	port := utils.Getenv("MSWT_MOCK_PORT", "8080")
	utils.LogInfo("Mock backend starting", map[string]interface{}{
		"port":        port,
		"login_shape": string(loginShape),
	})

	if err := router.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start mock backend")
		log.Fatalf("Failed to start mock backend: %v", err)
	}
}
