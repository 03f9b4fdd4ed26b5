package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Imrannnnn/TallieRestaurantApp/internal/audit"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/cache"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/config"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/handlers"
	infraRepo "github.com/Imrannnnn/TallieRestaurantApp/internal/infra/repository"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/middleware"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/storage"
	ucReservation "github.com/Imrannnnn/TallieRestaurantApp/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	redisClient := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	availabilityCache := cache.NewAvailabilityCache(redisClient, cache.DefaultAvailabilityTTL)

	photoStore := storage.NewPhotoStore(cfg)

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
		availabilityCache,
	)

	cancelReservationUC := ucReservation.NewCancelReservation(
		reservationRepo,
		auditDispatcher,
		availabilityCache,
	)

	listReservationsByDateUC := ucReservation.NewListReservationsByDate(
		reservationRepo,
	)

	availabilityUC := ucReservation.NewGetAvailability(
		reservationRepo,
		availabilityCache,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	restaurantHandler := handlers.NewRestaurantHandler(db, auditDispatcher)
	tableHandler := handlers.NewTableHandler(db, auditDispatcher)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		cancelReservationUC,
		listReservationsByDateUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)

	photoHandler := handlers.NewPhotoHandler(db, photoStore)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// RESTAURANTS + TABLES
		// ------------------------------
		api.POST("/restaurants", restaurantHandler.Create)
		api.GET("/restaurants", restaurantHandler.List)
		api.GET("/restaurants/:id", restaurantHandler.Get)
		api.POST("/restaurants/:id/tables", tableHandler.Create)
		api.GET("/restaurants/:id/reservations/:date", reservationHandler.ListByDate)

		// ------------------------------
		// RESERVATIONS
		// ------------------------------
		api.POST("/reservations", reservationHandler.Create)
		api.PATCH("/reservations/:id/cancel", reservationHandler.Cancel)

		// ------------------------------
		// AVAILABILITY
		// ------------------------------
		api.GET("/availability", availabilityHandler.Get)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("", meHandler.GetMe)
			secured.POST("/restaurants/:id/photo", photoHandler.Upload)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
