package dashboard

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func getJSON(t *testing.T, app *fiber.App, path string) []byte {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("lendo resposta: %v", err)
	}
	return data
}

func TestSustainabilityHandler(t *testing.T) {
	app := fiber.New()
	app.Get("/sustainability", SustainabilityHandler())

	var resp SustainabilityResponse
	if err := json.Unmarshal(getJSON(t, app, "/sustainability"), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if resp.WaterSaving != 25.6 || resp.EnergySaving != 18.2 {
		t.Errorf("economias = %v/%v, want 25.6/18.2", resp.WaterSaving, resp.EnergySaving)
	}
	if resp.CarbonReduction != 12.4 || resp.WasteReduction != 30.1 {
		t.Errorf("reduções = %v/%v, want 12.4/30.1", resp.CarbonReduction, resp.WasteReduction)
	}
	if len(resp.Monthly) != 6 {
		t.Fatalf("série mensal com %d pontos, want 6 (Jan..Jun)", len(resp.Monthly))
	}
	if resp.Monthly[0].Month != "Jan" || resp.Monthly[0].Water != 120 {
		t.Errorf("primeiro ponto = %+v, want Jan com 120 L", resp.Monthly[0])
	}
	if resp.Monthly[5].Month != "Jun" || resp.Monthly[5].Carbon != 28 {
		t.Errorf("último ponto = %+v, want Jun com 28 t", resp.Monthly[5])
	}
}

func TestActivitiesHandler(t *testing.T) {
	app := fiber.New()
	app.Get("/activities", ActivitiesHandler())

	var feed []Activity
	if err := json.Unmarshal(getJSON(t, app, "/activities"), &feed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(feed) != 4 {
		t.Fatalf("feed com %d atividades, want 4", len(feed))
	}
	if feed[0].Type != "plantation" || feed[0].Title != "Plantio realizado no Talhão 12" {
		t.Errorf("primeira atividade = %+v", feed[0])
	}
	for i, a := range feed {
		if a.Title == "" || a.Description == "" || a.Timestamp == "" {
			t.Errorf("atividade %d incompleta: %+v", i, a)
		}
	}
}
