package main

import (
	"log"
	"strings"

	"ciftlik-backend/internal/activity"
	"ciftlik-backend/internal/audit"
	"ciftlik-backend/internal/auth"
	"ciftlik-backend/internal/availability"
	"ciftlik-backend/internal/config"
	"ciftlik-backend/internal/crops"
	"ciftlik-backend/internal/dashboard"
	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/deliveries"
	"ciftlik-backend/internal/farm"
	"ciftlik-backend/internal/models"
	"ciftlik-backend/internal/plantings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	// Çalışan yönetimi
	adminRoutes.Post("/workers", auth.CreateWorkerHandler())

	// Tarla / yatak / fidelik yönetimi
	adminRoutes.Post("/plots", farm.CreatePlotHandler())
	adminRoutes.Put("/plots/:id", farm.UpdatePlotHandler())
	adminRoutes.Delete("/plots/:id", farm.DeletePlotHandler())
	adminRoutes.Post("/beds", farm.CreateBedHandler())
	adminRoutes.Put("/beds/:id", farm.UpdateBedHandler())
	adminRoutes.Delete("/beds/:id", farm.DeleteBedHandler())
	adminRoutes.Post("/nurseries", farm.CreateNurseryHandler())
	adminRoutes.Put("/nurseries/:id", farm.UpdateNurseryHandler())
	adminRoutes.Delete("/nurseries/:id", farm.DeleteNurseryHandler())

	// Çeşit yönetimi
	adminRoutes.Post("/crop-varieties", crops.CreateVarietyHandler())
	adminRoutes.Put("/crop-varieties/:id", crops.UpdateVarietyHandler())
	adminRoutes.Delete("/crop-varieties/:id", crops.DeleteVarietyHandler())

	// Müşteri yönetimi
	// Ekim silme (olaylarıyla birlikte, geri alınabilir)
	adminRoutes.Delete("/plantings/:id", plantings.DeletePlantingHandler())

	adminRoutes.Post("/customers", deliveries.CreateCustomerHandler())
	adminRoutes.Put("/customers/:id", deliveries.UpdateCustomerHandler())
	adminRoutes.Delete("/customers/:id", deliveries.DeleteCustomerHandler())

	// Ortak (auth gerektiren) route'lar

	// Tarla / yatak / fidelik
	protected.Get("/plots", farm.ListPlotsHandler())
	protected.Get("/plots/:id", farm.GetPlotHandler())
	protected.Get("/beds", farm.ListBedsHandler())
	protected.Get("/nurseries", farm.ListNurseriesHandler())

	// Çeşitler
	protected.Get("/crop-varieties", crops.ListVarietiesHandler())
	protected.Get("/crop-varieties/:id", crops.GetVarietyHandler())

	// Ekimler ve ekim defteri
	protected.Post("/plantings", plantings.CreatePlantingHandler())
	protected.Get("/plantings", plantings.ListPlantingsHandler())
	protected.Get("/plantings/:id", plantings.GetPlantingHandler())
	protected.Post("/plantings/:id/events", plantings.AppendEventHandler())
	protected.Get("/plantings/:id/events", plantings.ListEventsHandler())
	protected.Get("/plantings/:id/summary", plantings.GetSummaryHandler())

	// Bakım aktiviteleri
	protected.Post("/activities", activity.CreateActivityHandler())
	protected.Get("/activities", activity.ListActivitiesHandler())
	protected.Delete("/activities/:id", activity.DeleteActivityHandler())

	// Müşteriler
	protected.Get("/customers", deliveries.ListCustomersHandler())

	// Teslimatlar
	protected.Post("/deliveries", deliveries.CreateDeliveryHandler())
	protected.Get("/deliveries", deliveries.ListDeliveriesHandler())
	protected.Get("/deliveries/export", deliveries.ExportDeliveriesHandler())
	protected.Get("/deliveries/summary/monthly", deliveries.MonthlySummaryHandler())
	protected.Get("/deliveries/:id", deliveries.GetDeliveryHandler())
	protected.Delete("/deliveries/:id", deliveries.DeleteDeliveryHandler())

	// Stok durumu
	protected.Get("/availability", availability.GetAvailabilityHandler())

	// Dashboard
	protected.Get("/dashboard/harvest-chart", dashboard.HarvestChartHandler())

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())
	protected.Post("/audit-logs/:id/undo", audit.UndoAuditLogHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
