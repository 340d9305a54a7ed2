package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/audit"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/config"
	domainAppointment "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/appointment"
	domainCatalog "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/catalog"
	domainCustomer "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/customer"
	domainHistory "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/history"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
	domainReport "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/report"
	domainVehicle "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/vehicle"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/handlers"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/middleware"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/autoshop-scheduler/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/autoshop-scheduler/internal/usecase/catalog"
	ucCustomer "github.com/BruksfildServices01/autoshop-scheduler/internal/usecase/customer"
	ucHistory "github.com/BruksfildServices01/autoshop-scheduler/internal/usecase/history"
	ucReport "github.com/BruksfildServices01/autoshop-scheduler/internal/usecase/report"
	ucVehicle "github.com/BruksfildServices01/autoshop-scheduler/internal/usecase/vehicle"
)

// Stores is one implementation of every storage port, gorm or in-memory.
type Stores struct {
	Appointments domainAppointment.Repository
	Catalog      domainCatalog.Repository
	Vehicles     domainVehicle.Repository
	Customers    domainCustomer.Repository
	Reports      domainReport.Repository
	History      domainHistory.Repository

	CatalogCache domainCatalog.Cache
}

func RegisterRoutes(r *gin.Engine, stores Stores, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// SHARED
	// ======================================================
	clock := timezone.Clock(timezone.Now)
	auditLogger := audit.New(clock)
	step := time.Duration(cfg.SlotStepMinutes) * time.Minute

	// ======================================================
	// USE CASES
	// ======================================================
	appointmentUC := handlers.AppointmentUseCases{
		Book:         ucAppointment.NewBookAppointment(stores.Appointments, clock),
		SetStatus:    ucAppointment.NewSetAppointmentStatus(stores.Appointments),
		Cancel:       ucAppointment.NewCancelAppointment(stores.Appointments, auditLogger),
		Delete:       ucAppointment.NewDeleteAppointment(stores.Appointments, auditLogger),
		Reschedule:   ucAppointment.NewRescheduleAppointment(stores.Appointments, clock),
		Invoice:      ucAppointment.NewInvoiceFor(stores.Appointments),
		ListMine:     ucAppointment.NewListCustomerAppointments(stores.Appointments),
		ListAll:      ucAppointment.NewListAppointments(stores.Appointments),
		Upcoming:     ucAppointment.NewGetUpcomingAppointment(stores.Appointments, clock),
		LatestStatus: ucAppointment.NewGetLatestStatusMessage(stores.Appointments),
		Availability: ucAppointment.NewGetAvailability(stores.Appointments, step, clock),
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUC)

	serviceOfferHandler := handlers.NewServiceOfferHandler(
		ucCatalog.NewListServiceOffers(stores.Catalog, stores.CatalogCache),
		ucCatalog.NewAddServiceOffer(stores.Catalog, stores.CatalogCache),
		ucCatalog.NewUpdateServiceOffer(stores.Catalog, stores.CatalogCache),
		ucCatalog.NewDeleteServiceOffer(stores.Catalog, stores.CatalogCache, auditLogger),
	)

	vehicleHandler := handlers.NewVehicleHandler(
		ucVehicle.NewRegisterVehicle(stores.Vehicles),
		ucVehicle.NewUpdateVehicle(stores.Vehicles),
		ucVehicle.NewListMyVehicles(stores.Vehicles),
		ucVehicle.NewListAllVehicles(stores.Vehicles),
		ucVehicle.NewDeleteVehicle(stores.Vehicles, auditLogger),
	)

	meHandler := handlers.NewMeHandler(
		ucCustomer.NewGetProfile(stores.Customers),
		ucCustomer.NewSaveProfile(stores.Customers),
		ucCustomer.NewListCustomers(stores.Customers),
	)

	historyHandler := handlers.NewHistoryHandler(ucHistory.NewListHistory(stores.History))
	reportHandler := handlers.NewReportHandler(
		ucReport.NewGetSummary(stores.Reports, clock),
		ucReport.NewGetCustomerDashboard(stores.Reports),
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", serviceOfferHandler.List)
			publicAPI.GET("/availability", appointmentHandler.Availability)
		}

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PUT("/me", meHandler.SaveMe)
			secured.GET("/me/dashboard", reportHandler.Dashboard)

			secured.GET("/me/vehicles", vehicleHandler.ListMine)
			secured.POST("/me/vehicles", vehicleHandler.Register)
			secured.PUT("/me/vehicles/:id", vehicleHandler.Update)
			secured.DELETE("/vehicles/:id", vehicleHandler.Delete)

			secured.GET("/me/appointments", appointmentHandler.ListMine)
			secured.POST("/me/appointments", appointmentHandler.Book)
			secured.GET("/me/appointments/upcoming", appointmentHandler.Upcoming)
			secured.GET("/me/appointments/latest-status", appointmentHandler.LatestStatus)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/reschedule", appointmentHandler.Reschedule)

			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.GET("/appointments/:id/invoice", appointmentHandler.Invoice)

			secured.GET("/history", historyHandler.List)

			// ------------------------------
			// OPERATOR
			// ------------------------------
			operator := secured.Group("/admin")
			operator.Use(middleware.RequireRole(identity.RoleOperator))
			{
				operator.GET("/appointments", appointmentHandler.ListAll)
				operator.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)

				operator.POST("/services", serviceOfferHandler.Create)
				operator.PUT("/services/:id", serviceOfferHandler.Update)
				operator.DELETE("/services/:id", serviceOfferHandler.Delete)

				operator.GET("/vehicles", vehicleHandler.ListAll)
				operator.GET("/customers", meHandler.ListCustomers)
				operator.GET("/reports/summary", reportHandler.Summary)
			}
		}
	}
}
