// Package analysis integra os provedores externos de dados agronômicos
// (clima, satélite, zoneamento). O core só conhece o contrato SeriesProvider:
// uma série temporal finita e ordenada de valores numéricos. A implementação
// real é plugável; a de demonstração responde com carga determinística após
// uma latência simulada.
package analysis

import (
	"context"
	"hash/fnv"
	"math/rand"
	"time"
)

const (
	VarTemperature = "temperatura"
	VarHumidity    = "umidade"
	VarRain        = "chuva"
	VarWind        = "vento"
)

type Query struct {
	Variable string
	Location string
	Days     int
}

type Sample struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type SeriesProvider interface {
	FetchSeries(ctx context.Context, q Query) ([]Sample, error)
}

// MockProvider simula o serviço externo: espera Delay e devolve uma série
// pseudoaleatória estável para o par variável+localização. Cancelamento de
// contexto interrompe a espera — resposta atrasada é descartada, não aplicada.
type MockProvider struct {
	Delay time.Duration
	Now   func() time.Time // nil usa time.Now
}

func (p *MockProvider) FetchSeries(ctx context.Context, q Query) ([]Sample, error) {
	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	days := q.Days
	if days <= 0 {
		days = 7
	}

	now := time.Now()
	if p.Now != nil {
		now = p.Now()
	}

	rng := rand.New(rand.NewSource(seed(q.Variable + "|" + q.Location)))
	min, max := rangeFor(q.Variable)

	samples := make([]Sample, 0, days)
	for i := 0; i < days; i++ {
		samples = append(samples, Sample{
			Label: dayLabel(now, i),
			Value: float64(int(min + rng.Float64()*(max-min))),
		})
	}
	return samples, nil
}

func seed(key string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return int64(h.Sum64())
}

func rangeFor(variable string) (float64, float64) {
	switch variable {
	case VarTemperature:
		return 22, 32
	case VarHumidity:
		return 55, 86
	case VarRain:
		return 0, 21
	case VarWind:
		return 5, 21
	default:
		return 0, 100
	}
}

var weekdayLabels = [7]string{
	"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado",
}

func dayLabel(now time.Time, offset int) string {
	switch offset {
	case 0:
		return "Hoje"
	case 1:
		return "Amanhã"
	default:
		return weekdayLabels[now.AddDate(0, 0, offset).Weekday()]
	}
}
