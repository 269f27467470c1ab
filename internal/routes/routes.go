package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-platform/internal/audit"
	"github.com/BruksfildServices01/barber-platform/internal/auth"
	"github.com/BruksfildServices01/barber-platform/internal/cache"
	"github.com/BruksfildServices01/barber-platform/internal/config"
	"github.com/BruksfildServices01/barber-platform/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-platform/internal/infra/repository"
	"github.com/BruksfildServices01/barber-platform/internal/middleware"
	"github.com/BruksfildServices01/barber-platform/internal/storage"
	ucAppointment "github.com/BruksfildServices01/barber-platform/internal/usecase/appointment"
	ucClient "github.com/BruksfildServices01/barber-platform/internal/usecase/client"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *logrus.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	pageCache := cache.New(cfg, log)
	uploader := storage.NewS3Uploader(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	updateStatusUC := ucAppointment.NewUpdateStatus(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	createManualClientUC := ucClient.NewCreateManualClient(db, auditDispatcher)
	registerClientUC := ucClient.NewRegisterClient(db)
	listClientStatsUC := ucClient.NewListClientsWithStats(db)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, registerClientUC)
	locationHandler := handlers.NewLocationHandler(db, auditDispatcher, pageCache)
	barberHandler := handlers.NewBarberHandler(db, auditDispatcher, pageCache)
	serviceHandler := handlers.NewServiceHandler(db, uploader)
	clientHandler := handlers.NewClientHandler(db, createManualClientUC, listClientStatsUC)
	appointmentHandler := handlers.NewAppointmentHandler(createAppointmentUC, updateStatusUC, listAppointmentsUC)
	publicHandler := handlers.NewPublicHandler(db, pageCache)

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.ShowTenant)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/register", authHandler.Register)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// Locations
			secured.GET("/locations", locationHandler.ListActive)
			secured.POST("/locations", locationHandler.Create)
			secured.GET("/locations/:id", locationHandler.Get)
			secured.PUT("/locations/:id", locationHandler.Update)
			secured.DELETE("/locations/:id", locationHandler.Archive)

			// Barbers
			secured.GET("/barbers", barberHandler.List)
			secured.POST("/barbers", barberHandler.Create)
			secured.PUT("/barbers/:id", barberHandler.Update)
			secured.DELETE("/barbers/:id", barberHandler.Deactivate)
			secured.PUT("/me/profile", barberHandler.SelfUpdate)

			// Services
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.POST("/services/:id/image", serviceHandler.UploadImage)

			// Clients
			clientsStaff := secured.Group("/clients")
			clientsStaff.Use(middleware.RequireRoles(auth.RoleAdmin, auth.RoleBarber))
			{
				clientsStaff.POST("/manual", clientHandler.CreateManual)
			}
			secured.GET("/clients", clientHandler.ListWithStatistics)

			// Appointments
			secured.POST("/appointments", appointmentHandler.Create)
			secured.POST("/appointments/manual", appointmentHandler.CreateManual)
			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
		}
	}
}
