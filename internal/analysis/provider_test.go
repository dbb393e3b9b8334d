package analysis

import (
	"context"
	"testing"
	"time"
)

func TestFetchSeriesDeterministic(t *testing.T) {
	p := &MockProvider{}
	q := Query{Variable: VarTemperature, Location: "Sorriso - MT", Days: 7}

	first, err := p.FetchSeries(context.Background(), q)
	if err != nil {
		t.Fatalf("FetchSeries: %v", err)
	}
	second, err := p.FetchSeries(context.Background(), q)
	if err != nil {
		t.Fatalf("FetchSeries: %v", err)
	}

	if len(first) != 7 {
		t.Fatalf("len = %d, want 7", len(first))
	}
	for i := range first {
		if first[i].Value != second[i].Value {
			t.Errorf("amostra %d variou entre chamadas: %v != %v", i, first[i].Value, second[i].Value)
		}
	}
}

func TestFetchSeriesRanges(t *testing.T) {
	p := &MockProvider{}

	cases := []struct {
		variable string
		min, max float64
	}{
		{VarTemperature, 22, 32},
		{VarHumidity, 55, 86},
		{VarRain, 0, 21},
		{VarWind, 5, 21},
	}
	for _, c := range cases {
		t.Run(c.variable, func(t *testing.T) {
			samples, err := p.FetchSeries(context.Background(), Query{Variable: c.variable, Location: "Luís Eduardo Magalhães - BA"})
			if err != nil {
				t.Fatalf("FetchSeries: %v", err)
			}
			if len(samples) != 7 {
				t.Fatalf("dias default = %d, want 7", len(samples))
			}
			for _, s := range samples {
				if s.Value < c.min || s.Value >= c.max {
					t.Errorf("%s = %v fora de [%v, %v)", c.variable, s.Value, c.min, c.max)
				}
			}
		})
	}
}

func TestFetchSeriesLabels(t *testing.T) {
	fixed := time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC) // quarta-feira
	p := &MockProvider{Now: func() time.Time { return fixed }}

	samples, err := p.FetchSeries(context.Background(), Query{Variable: VarRain, Location: "x", Days: 4})
	if err != nil {
		t.Fatalf("FetchSeries: %v", err)
	}

	want := []string{"Hoje", "Amanhã", "Sexta", "Sábado"}
	for i, w := range want {
		if samples[i].Label != w {
			t.Errorf("label[%d] = %q, want %q", i, samples[i].Label, w)
		}
	}
}

func TestFetchSeriesCancellation(t *testing.T) {
	p := &MockProvider{Delay: time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := p.FetchSeries(ctx, Query{Variable: VarWind, Location: "x"})
	if err == nil {
		t.Fatal("contexto cancelado deveria interromper a busca")
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("cancelamento não interrompeu a espera (%v)", elapsed)
	}
}
