package main

import (
	"strings"
	"time"

	"agrofacil-backend/internal/analysis"
	"agrofacil-backend/internal/auth"
	"agrofacil-backend/internal/config"
	"agrofacil-backend/internal/crop"
	"agrofacil-backend/internal/dashboard"
	"agrofacil-backend/internal/database"
	"agrofacil-backend/internal/financial"
	"agrofacil-backend/internal/inventory"
	"agrofacil-backend/internal/logging"
	"agrofacil-backend/internal/property"
	"agrofacil-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	log := logging.GetLogger()

	cfg := config.Load()
	database.Init(cfg)

	recordStore := store.New(database.DB)
	climateProvider := &analysis.MockProvider{
		Delay: time.Duration(cfg.ProviderDelayMS) * time.Millisecond,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.WithField("path", c.Path()).Error("Erro inesperado: ", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro inesperado no servidor",
			})
		},
	})

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

	// Público
	api.Post("/auth/register", auth.RegisterHandler())
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protegido
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Propriedades
	protected.Post("/properties", property.CreateHandler(recordStore))
	protected.Get("/properties", property.ListHandler(recordStore))
	protected.Put("/properties/:id", property.UpdateHandler(recordStore))
	protected.Delete("/properties/:id", property.DeleteHandler(recordStore))

	// Culturas
	protected.Post("/crops", crop.CreateHandler(recordStore))
	protected.Get("/crops", crop.ListHandler(recordStore))
	protected.Get("/crops/summary", crop.SummaryHandler(recordStore))
	protected.Put("/crops/:id", crop.UpdateHandler(recordStore))
	protected.Delete("/crops/:id", crop.DeleteHandler(recordStore))

	// Estoque
	protected.Post("/inventory", inventory.CreateHandler(recordStore))
	protected.Get("/inventory", inventory.ListHandler(recordStore))
	protected.Get("/inventory/low-stock", inventory.LowStockHandler(recordStore))
	protected.Put("/inventory/:id", inventory.UpdateHandler(recordStore))
	protected.Delete("/inventory/:id", inventory.DeleteHandler(recordStore))

	// Transações e relatórios financeiros
	protected.Post("/transactions", financial.CreateTransactionHandler(recordStore))
	protected.Get("/transactions", financial.ListTransactionsHandler(recordStore))
	protected.Put("/transactions/:id", financial.UpdateTransactionHandler(recordStore))
	protected.Delete("/transactions/:id", financial.DeleteTransactionHandler(recordStore))
	protected.Get("/reports/financial", financial.ReportHandler(recordStore))
	protected.Get("/reports/financial/export", financial.ExportHandler(recordStore))

	// Painel
	protected.Get("/dashboard/kpis", dashboard.KPIHandler(recordStore))
	protected.Get("/dashboard/alerts", dashboard.AlertsHandler(recordStore))
	protected.Get("/dashboard/productivity", dashboard.ProductivityHandler())
	protected.Get("/dashboard/weather", dashboard.WeatherHandler())
	protected.Get("/dashboard/sustainability", dashboard.SustainabilityHandler())
	protected.Get("/dashboard/activities", dashboard.ActivitiesHandler())

	// Análises (provedores externos simulados)
	protected.Post("/analysis/climate", analysis.ClimateHandler(climateProvider))
	protected.Post("/analysis/plantation", analysis.PlantationHandler())
	protected.Post("/analysis/zarc", analysis.ZarcHandler())

	log.Info("Servidor rodando na porta ", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
