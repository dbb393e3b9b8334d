package analysis

import (
	"fmt"
	"hash/fnv"
	"math/rand"

	"agrofacil-backend/internal/logging"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

type ClimateRequest struct {
	Location string `json:"location"`
}

type ForecastDay struct {
	Day      string  `json:"day"`
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
	Rain     float64 `json:"rain"`
	Wind     float64 `json:"wind"`
}

type ClimateAlert struct {
	Type           string `json:"type"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
}

type ClimateResponse struct {
	Location string         `json:"location"`
	Current  ForecastDay    `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`
	Alerts   []ClimateAlert `json:"alerts"`
}

// POST /api/analysis/climate
// As quatro variáveis são buscadas em paralelo; a resposta só é montada
// depois que todas chegam (barreira do errgroup) — nada de série parcial.
func ClimateHandler(provider SeriesProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ClimateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if body.Location == "" {
			return fiber.NewError(fiber.StatusBadRequest, "location é obrigatório")
		}

		vars := []string{VarTemperature, VarHumidity, VarRain, VarWind}
		results := make([][]Sample, len(vars))

		g, ctx := errgroup.WithContext(c.Context())
		for i, variable := range vars {
			i, variable := i, variable
			g.Go(func() error {
				samples, err := provider.FetchSeries(ctx, Query{Variable: variable, Location: body.Location, Days: 7})
				if err != nil {
					return err
				}
				results[i] = samples
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			logging.LogError("analysis", "climate", err)
			return fiber.NewError(fiber.StatusBadGateway, "Serviço de clima indisponível")
		}

		temp, humidity, rain, wind := results[0], results[1], results[2], results[3]
		forecast := make([]ForecastDay, 0, len(temp))
		for i := range temp {
			forecast = append(forecast, ForecastDay{
				Day:      temp[i].Label,
				Temp:     temp[i].Value,
				Humidity: humidity[i].Value,
				Rain:     rain[i].Value,
				Wind:     wind[i].Value,
			})
		}

		resp := ClimateResponse{
			Location: body.Location,
			Forecast: forecast,
			Alerts: []ClimateAlert{{
				Type:           "warning",
				Title:          "Alerta de Chuva",
				Message:        "Previsão de chuvas intensas nos próximos 3 dias",
				Recommendation: "Considere proteção das culturas expostas",
			}},
		}
		if len(forecast) > 0 {
			resp.Current = forecast[0]
		}
		return c.JSON(resp)
	}
}

type PlantationRequest struct {
	Property string `json:"property"`
	Crop     string `json:"crop"`
}

type PlantationZone struct {
	Zone   string `json:"zone"`
	Status string `json:"status"`
}

type PlantationResponse struct {
	Property       string           `json:"property"`
	Crop           string           `json:"crop"`
	HealthScore    int              `json:"health_score"` // 70–100
	EstimatedYield string           `json:"estimated_yield"`
	PlantCount     int              `json:"plant_count"`
	Zones          []PlantationZone `json:"zones"`
}

// POST /api/analysis/plantation — índice de vegetação simulado do satélite,
// estável por propriedade+cultura.
func PlantationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PlantationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if body.Property == "" {
			return fiber.NewError(fiber.StatusBadRequest, "property é obrigatório")
		}

		h := fnv.New64a()
		_, _ = h.Write([]byte(body.Property + "|" + body.Crop))
		rng := rand.New(rand.NewSource(int64(h.Sum64())))

		health := 70 + rng.Intn(30)
		status := "Saudável"
		if health < 80 {
			status = "Atenção"
		}

		return c.JSON(PlantationResponse{
			Property:       body.Property,
			Crop:           body.Crop,
			HealthScore:    health,
			EstimatedYield: fmt.Sprintf("%d sc/ha", 45+rng.Intn(20)),
			PlantCount:     2000 + rng.Intn(1000),
			Zones: []PlantationZone{
				{Zone: "Norte", Status: status},
				{Zone: "Centro", Status: "Saudável"},
				{Zone: "Sul", Status: status},
			},
		})
	}
}

type ZarcRequest struct {
	Crop     string `json:"crop"`
	Location string `json:"location"`
}

type ZarcResult struct {
	Soil   string `json:"soil"`
	Risk   int    `json:"risk"` // percentual
	Window string `json:"window"`
}

// POST /api/analysis/zarc — janelas de plantio por tipo de solo (tabela fixa
// do zoneamento agrícola de risco climático).
func ZarcHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ZarcRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if body.Crop == "" {
			return fiber.NewError(fiber.StatusBadRequest, "crop é obrigatório")
		}

		return c.JSON([]ZarcResult{
			{Soil: "ARGILOSO", Risk: 20, Window: "01 de Outubro a 31 de Dezembro"},
			{Soil: "TEXTURA MEDIA", Risk: 20, Window: "11 de Outubro a 20 de Dezembro"},
			{Soil: "ARENOSO", Risk: 20, Window: "21 de Outubro a 10 de Dezembro"},
		})
	}
}
