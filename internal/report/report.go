// Package report é o motor de agregação: funções puras que transformam
// snapshots das coleções em visões derivadas (KPIs, alertas, rollups).
// Nenhuma função aqui faz I/O nem falha com entrada vazia — lista vazia
// produz resumo zerado, nunca exceção. Quem chama é responsável por buscar
// dados frescos antes e por reinvocar após cada mutação.
package report

import (
	"agrofacil-backend/internal/models"
)

// KPISummary são os cartões do painel principal.
type KPISummary struct {
	TotalArea           float64 `json:"total_area"`            // soma da área das propriedades (ha)
	AvgProductivity     float64 `json:"avg_productivity"`      // placeholder, ver ComputeKPIs
	ActiveCrops         int     `json:"active_crops"`
	TotalInventoryValue float64 `json:"total_inventory_value"` // R$
}

func ComputeKPIs(properties []models.Property, crops []models.Crop, inventory []models.InventoryItem) KPISummary {
	var totalArea float64
	for _, p := range properties {
		totalArea += p.Area
	}

	var totalValue float64
	for _, item := range inventory {
		totalValue += item.Value()
	}

	return KPISummary{
		TotalArea:           totalArea,
		AvgProductivity:     0, // calculado quando houver fonte de dados de produtividade
		ActiveCrops:         len(crops),
		TotalInventoryValue: totalValue,
	}
}

// CropSummary é o rollup do módulo de culturas.
type CropSummary struct {
	TotalArea       float64 `json:"total_area"`
	AverageProgress float64 `json:"average_progress"`
}

func ComputeCropSummary(crops []models.Crop) CropSummary {
	summary := CropSummary{}
	if len(crops) == 0 {
		return summary
	}
	var progressSum int
	for _, c := range crops {
		summary.TotalArea += c.Area
		progressSum += c.Progress
	}
	summary.AverageProgress = float64(progressSum) / float64(len(crops))
	return summary
}
