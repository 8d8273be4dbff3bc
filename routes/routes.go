package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/snap-point/places-api/config"
	"github.com/snap-point/places-api/controllers"
	"github.com/snap-point/places-api/middleware"
	"github.com/snap-point/places-api/repositories"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *slog.Logger) {
	r.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigin),
	)

	// Initialize controllers
	placeController := controllers.NewPlaceController(repositories.NewPlaceRepository(db), logger)
	helloController := controllers.NewHelloController()

	api := r.Group("/api")
	SetupPlaceRoutes(api, placeController, middleware.AuthMiddleware(cfg.JWTSecret))
	SetupHelloRoutes(r, helloController)
}
