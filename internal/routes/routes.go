package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/justconnect/justconnect-api/internal/audit"
	"github.com/justconnect/justconnect-api/internal/bookingcache"
	"github.com/justconnect/justconnect-api/internal/chat"
	"github.com/justconnect/justconnect-api/internal/config"
	"github.com/justconnect/justconnect-api/internal/handlers"
	infraRepo "github.com/justconnect/justconnect-api/internal/infra/repository"
	"github.com/justconnect/justconnect-api/internal/media"
	"github.com/justconnect/justconnect-api/internal/middleware"
	"github.com/justconnect/justconnect-api/internal/payments"
	ucBooking "github.com/justconnect/justconnect-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ------------------------------
	// infra singletons
	// ------------------------------
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	tracker := bookingcache.NewTracker()
	hub := chat.NewHub(rdb)
	uploader := media.NewUploader(cfg)

	var checkout handlers.CheckoutProvider = payments.Disabled{}
	if cfg.MPAccessToken != "" {
		mp, err := payments.NewCheckout(cfg.MPAccessToken)
		if err != nil {
			log.Printf("payments disabled: %v", err)
		} else {
			checkout = mp
		}
	}

	// ------------------------------
	// use cases
	// ------------------------------
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	transitionBookingUC := ucBooking.NewTransitionBooking(bookingRepo, auditDispatcher)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	// ------------------------------
	// handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(serviceRepo)
	professionalHandler := handlers.NewProfessionalHandler(db, bookingRepo)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		transitionBookingUC,
		listBookingsUC,
		tracker,
		bookingRepo,
		checkout,
	)
	uploadHandler := handlers.NewUploadHandler(db, uploader)
	chatHandler := handlers.NewChatHandler(db, hub)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	authRequired := middleware.AuthMiddleware(cfg)
	adminOnly := middleware.RequireRoles("admin")
	professionalOnly := middleware.RequireRoles("professional")

	// ------------------------------
	// uploads
	// ------------------------------
	r.POST("/upload/profile-photo", authRequired, uploadHandler.ProfilePhoto)

	// ------------------------------
	// api v1
	// ------------------------------
	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)
		api.GET("/professionals", professionalHandler.List)

		admin := api.Group("/")
		admin.Use(authRequired, adminOnly)
		{
			admin.POST("/services", serviceHandler.Create)
			admin.PUT("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/admin/audit-logs", auditLogsHandler.List)
		}

		secured := api.Group("/me")
		secured.Use(authRequired)
		{
			secured.GET("", meHandler.GetMe)

			secured.GET("/bookings", bookingHandler.List)
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/summary", bookingHandler.Summary)
			secured.DELETE("/bookings/notification", bookingHandler.ClearNotification)
			secured.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/bookings/:id/complete", bookingHandler.Complete)
			secured.POST("/bookings/:id/checkout", bookingHandler.Checkout)

			secured.PUT("/availability", professionalOnly, professionalHandler.UpdateAvailability)

			secured.POST("/chats/:bookingID/messages", chatHandler.Send)
			secured.GET("/chats/:bookingID/messages", chatHandler.History)
			secured.GET("/chats/:bookingID/stream", chatHandler.Stream)
		}
	}
}
