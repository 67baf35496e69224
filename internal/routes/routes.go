package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/reservly/booking-platform/internal/audit"
	"github.com/reservly/booking-platform/internal/config"
	"github.com/reservly/booking-platform/internal/handlers"
	infraRepo "github.com/reservly/booking-platform/internal/infra/repository"
	"github.com/reservly/booking-platform/internal/middleware"
	"github.com/reservly/booking-platform/internal/models"
	ucAppointment "github.com/reservly/booking-platform/internal/usecase/appointment"
	ucBilling "github.com/reservly/booking-platform/internal/usecase/billing"
	ucService "github.com/reservly/booking-platform/internal/usecase/service"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	billingRepo := infraRepo.NewBillingGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, auditDispatcher)
	bookDirectUC := ucAppointment.NewBookDirectAppointment(appointmentRepo, auditDispatcher)
	acceptUC := ucAppointment.NewAcceptAppointment(appointmentRepo, auditDispatcher)
	completeUC := ucAppointment.NewCompleteAppointment(appointmentRepo, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher)
	rescheduleUC := ucAppointment.NewRescheduleAppointment(appointmentRepo, auditDispatcher)
	listUC := ucAppointment.NewListAppointments(appointmentRepo)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	// ======================================================
	// USE CASES: BILLING
	// ======================================================
	adminReportUC := ucBilling.NewAdminBillingReport(billingRepo)
	companyReportUC := ucBilling.NewCompanyBillingReport(billingRepo)
	payCommissionUC := ucBilling.NewPayCommission(billingRepo, auditDispatcher)

	// ======================================================
	// USE CASES: SERVICES
	// ======================================================
	listServicesUC := ucService.NewListServices(serviceRepo)
	archiveServiceUC := ucService.NewArchiveService(serviceRepo, auditDispatcher)
	deleteServiceUC := ucService.NewDeleteService(serviceRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	companyHandler := handlers.NewCompanyHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, listServicesUC, archiveServiceUC, deleteServiceUC)
	subscriptionHandler := handlers.NewSubscriptionHandler(db)
	userAdminHandler := handlers.NewUserAdminHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	publicHandler := handlers.NewPublicHandler(db, availabilityUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		bookUC,
		bookDirectUC,
		acceptUC,
		completeUC,
		cancelUC,
		rescheduleUC,
		listUC,
	)

	billingHandler := handlers.NewBillingHandler(
		db,
		adminReportUC,
		companyReportUC,
		payCommissionUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/companies", publicHandler.ListCompanies)
			publicAPI.GET("/companies/:id/services", publicHandler.ListCompanyServices)
			publicAPI.GET("/companies/:id/availability", publicHandler.Availability)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.RegisterUser)
		api.POST("/auth/register-company", authHandler.RegisterCompany)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.Auth(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PUT("/me", meHandler.UpdateMe)

			// Any authenticated principal; per-appointment access is
			// decided by ownership inside the use case.
			secured.POST("/appointments", appointmentHandler.Book)
			secured.GET("/appointments", appointmentHandler.ListMine)
			secured.PUT("/appointments/:id", appointmentHandler.Reschedule)
			secured.POST("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// COMPANY AREA
			// ------------------------------
			company := secured.Group("/company")
			company.Use(middleware.RequireRole(models.RoleCompany, models.RoleAdmin))
			{
				company.GET("/profile", companyHandler.GetMyCompany)
				company.PUT("/profile", companyHandler.UpdateMyCompany)

				company.GET("/services", serviceHandler.List)
				company.POST("/services", serviceHandler.Create)
				company.PUT("/services/:id", serviceHandler.Update)
				company.POST("/services/:id/archive", serviceHandler.Archive)
				company.DELETE("/services/:id", serviceHandler.Delete)

				company.GET("/appointments", appointmentHandler.ListForCompany)
				company.POST("/appointments", appointmentHandler.BookDirect)
				company.POST("/appointments/:id/accept", appointmentHandler.Accept)
				company.POST("/appointments/:id/complete", appointmentHandler.Complete)
				company.POST("/appointments/:id/cancel", appointmentHandler.Cancel)
				company.PUT("/appointments/:id", appointmentHandler.Reschedule)

				company.GET("/billing/report", billingHandler.CompanyReport)
				company.POST("/billing/pay", billingHandler.PayCommission)

				company.GET("/subscription", subscriptionHandler.GetMySubscription)
				company.GET("/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// ADMIN AREA
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/companies", companyHandler.ListCompanies)
				admin.PUT("/companies/:id/status", companyHandler.SetStatus)

				admin.GET("/users", userAdminHandler.List)
				admin.DELETE("/users/:id", userAdminHandler.Delete)

				admin.GET("/billing/report", billingHandler.AdminReport)
				admin.GET("/appointments", appointmentHandler.ListAll)
			}
		}
	}
}
