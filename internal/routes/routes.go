package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/ebsaroptics/optical-center-api/internal/audit"
	"github.com/ebsaroptics/optical-center-api/internal/auth"
	"github.com/ebsaroptics/optical-center-api/internal/config"
	"github.com/ebsaroptics/optical-center-api/internal/handlers"
	infraRepo "github.com/ebsaroptics/optical-center-api/internal/infra/repository"
	"github.com/ebsaroptics/optical-center-api/internal/middleware"
	"github.com/ebsaroptics/optical-center-api/internal/storage"
	ucBooking "github.com/ebsaroptics/optical-center-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	imageStore storage.ImageStore,
	rdb *redis.Client,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	credStore := auth.NewGormCredentialStore(db)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createPublicBookingUC := ucBooking.NewCreatePublicBooking(
		bookingRepo,
		auditDispatcher,
	)

	sendSMSUC := ucBooking.NewSendSMS(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(credStore, cfg)

	publicBookingHandler := handlers.NewPublicBookingHandler(db, createPublicBookingUC)
	employeeBookingHandler := handlers.NewEmployeeBookingHandler(db, auditDispatcher)
	smsHandler := handlers.NewSMSHandler(db, sendSMSUC)

	customerHandler := handlers.NewCustomerHandler(db)
	expenseHandler := handlers.NewExpenseHandler(db, auditDispatcher)
	productHandler := handlers.NewProductHandler(db, imageStore, auditDispatcher)

	statsHandler := handlers.NewStatsHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC: booking form + legacy admin surface
		// ------------------------------
		publicCreate := []gin.HandlerFunc{publicBookingHandler.Create}
		if rdb != nil {
			publicCreate = append(
				[]gin.HandlerFunc{middleware.RateLimit(rdb, 5, time.Minute)},
				publicCreate...,
			)
		}
		api.POST("/booking", publicCreate...)
		api.GET("/booking", publicBookingHandler.List)
		api.PUT("/booking/:id", publicBookingHandler.LegacyUpdate)
		api.DELETE("/booking/:id", publicBookingHandler.HardDelete)

		// ------------------------------
		// PUBLIC: catalog reads
		// ------------------------------
		api.GET("/products", productHandler.List)
		api.GET("/products/low-stock", productHandler.LowStock)
		api.GET("/products/:id", productHandler.Get)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/employee/login", authHandler.Login)

		// ------------------------------
		// EMPLOYEE CONSOLE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/employee/bookings", employeeBookingHandler.List)
			secured.POST("/employee/bookings", employeeBookingHandler.Create)
			secured.GET("/employee/bookings/:id", employeeBookingHandler.Get)
			secured.PUT("/employee/bookings/:id", employeeBookingHandler.Update)
			secured.DELETE("/employee/bookings/:id", employeeBookingHandler.SoftDelete)

			secured.GET("/employee/bookings/:id/sms", smsHandler.Preview)
			secured.POST("/employee/bookings/:id/sms", smsHandler.Send)

			secured.GET("/employee/customers", customerHandler.List)
			secured.POST("/employee/customers", customerHandler.Create)
			secured.GET("/employee/customers/:id", customerHandler.Get)
			secured.PUT("/employee/customers/:id", customerHandler.Update)
			secured.DELETE("/employee/customers/:id", customerHandler.SoftDelete)

			secured.GET("/employee/expenses", expenseHandler.List)
			secured.POST("/employee/expenses", expenseHandler.Create)
			secured.GET("/employee/expenses/:id", expenseHandler.Get)
			secured.PUT("/employee/expenses/:id", expenseHandler.Update)
			secured.DELETE("/employee/expenses/:id", expenseHandler.SoftDelete)

			secured.POST("/products", productHandler.Create)
			secured.PUT("/products/:id", productHandler.Update)
			secured.DELETE("/products/:id", productHandler.SoftDelete)

			secured.GET("/employee/stats", statsHandler.Get)
			secured.GET("/employee/audit-logs", auditLogsHandler.List)
		}
	}
}
