package dashboard

import (
	"errors"
	"time"

	"agrofacil-backend/internal/auth"
	"agrofacil-backend/internal/logging"
	"agrofacil-backend/internal/models"
	"agrofacil-backend/internal/report"
	"agrofacil-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotAuthenticated) {
		return fiber.NewError(fiber.StatusUnauthorized, "Usuário não autenticado")
	}
	logging.LogError("dashboard", "store", err)
	return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar o painel")
}

// GET /api/dashboard/kpis
// As três coleções são buscadas em paralelo e agregadas só depois da barreira:
// resultado parcial nunca vira KPI.
func KPIHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var (
			properties []models.Property
			crops      []models.Crop
			inventory  []models.InventoryItem
		)

		g, _ := errgroup.WithContext(c.Context())
		g.Go(func() error {
			var err error
			properties, err = s.ListProperties(userID)
			return err
		})
		g.Go(func() error {
			var err error
			crops, err = s.ListCrops(userID)
			return err
		})
		g.Go(func() error {
			var err error
			inventory, err = s.ListInventory(userID)
			return err
		})
		if err := g.Wait(); err != nil {
			return mapStoreErr(err)
		}

		return c.JSON(report.ComputeKPIs(properties, crops, inventory))
	}
}

// GET /api/dashboard/alerts
func AlertsHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		inventory, err := s.ListInventory(userID)
		if err != nil {
			return mapStoreErr(err)
		}

		return c.JSON(report.StockAlerts(inventory, time.Now()))
	}
}

type ProductivityPoint struct {
	Month        string  `json:"month"`
	Productivity float64 `json:"productivity"` // sc/ha
}

type ProductivityResponse struct {
	Points []ProductivityPoint `json:"points"`
	Trend  string              `json:"trend"`
}

// GET /api/dashboard/productivity
// Série fixa de demonstração até existir fonte real de produtividade
// (o mesmo dado que alimenta o placeholder de AvgProductivity nos KPIs).
func ProductivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(ProductivityResponse{
			Points: []ProductivityPoint{
				{Month: "Jan", Productivity: 45},
				{Month: "Fev", Productivity: 52},
				{Month: "Mar", Productivity: 48},
				{Month: "Abr", Productivity: 61},
				{Month: "Mai", Productivity: 55},
				{Month: "Jun", Productivity: 58},
			},
			Trend: "Crescimento de 8% em relação ao período anterior",
		})
	}
}

type ResourcePoint struct {
	Month  string  `json:"month"`
	Water  float64 `json:"water"`  // L/mês
	Energy float64 `json:"energy"` // kWh/mês
	Carbon float64 `json:"carbon"` // t CO2/mês
}

type SustainabilityResponse struct {
	WaterSaving     float64         `json:"water_saving"`     // %
	EnergySaving    float64         `json:"energy_saving"`    // %
	CarbonReduction float64         `json:"carbon_reduction"` // %
	WasteReduction  float64         `json:"waste_reduction"`  // %
	Monthly         []ResourcePoint `json:"monthly"`
}

// GET /api/dashboard/sustainability
// Economia de recursos do painel de sustentabilidade, série fixa de
// demonstração como a de produtividade.
func SustainabilityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(SustainabilityResponse{
			WaterSaving:     25.6,
			EnergySaving:    18.2,
			CarbonReduction: 12.4,
			WasteReduction:  30.1,
			Monthly: []ResourcePoint{
				{Month: "Jan", Water: 120, Energy: 85, Carbon: 45},
				{Month: "Fev", Water: 110, Energy: 80, Carbon: 42},
				{Month: "Mar", Water: 105, Energy: 75, Carbon: 38},
				{Month: "Abr", Water: 95, Energy: 70, Carbon: 35},
				{Month: "Mai", Water: 88, Energy: 65, Carbon: 32},
				{Month: "Jun", Water: 82, Energy: 58, Carbon: 28},
			},
		})
	}
}

type Activity struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

// GET /api/dashboard/activities — feed fixo de atividades recentes.
func ActivitiesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON([]Activity{
			{
				Type:        "plantation",
				Title:       "Plantio realizado no Talhão 12",
				Description: "Soja BRS 1010 - 45 hectares",
				Timestamp:   "08:30 - Hoje",
			},
			{
				Type:        "analysis",
				Title:       "Análise climática atualizada",
				Description: "Previsão para os próximos 14 dias disponível",
				Timestamp:   "07:15 - Hoje",
			},
			{
				Type:        "inventory",
				Title:       "Recebimento de insumos",
				Description: "Fertilizante NPK 10-10-10 - 2.500 kg",
				Timestamp:   "16:45 - Ontem",
			},
			{
				Type:        "maintenance",
				Title:       "Manutenção preventiva realizada",
				Description: "Trator John Deere 6120 - Troca de óleo",
				Timestamp:   "14:20 - Ontem",
			},
		})
	}
}

type WeatherResponse struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Humidity    int     `json:"humidity"`
	WindSpeed   int     `json:"wind_speed"`
	RainChance  int     `json:"rain_chance"`
	Advice      string  `json:"advice"`
}

// GET /api/dashboard/weather — snapshot fixo do widget de clima.
func WeatherHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(WeatherResponse{
			Temperature: 28,
			Condition:   "Parcialmente Nublado",
			Humidity:    72,
			WindSpeed:   15,
			RainChance:  30,
			Advice:      "Condições favoráveis para irrigação",
		})
	}
}
