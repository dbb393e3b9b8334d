package report

import (
	"fmt"
	"strconv"
	"time"

	"agrofacil-backend/internal/models"
)

type AlertType string

const (
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
)

type AlertPriority string

const (
	PriorityHigh AlertPriority = "alta"
	PriorityLow  AlertPriority = "baixa"
)

type Alert struct {
	Type      AlertType     `json:"type"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	Priority  AlertPriority `json:"priority"`
	Time      string        `json:"time"` // rótulo exibido no painel
	Timestamp time.Time     `json:"timestamp"`
}

// StockAlerts mapeia cada item em estoque baixo para um alerta de prioridade
// alta. Com tudo em nível adequado, devolve exatamente um alerta informativo:
// o painel nunca fica em branco.
func StockAlerts(inventory []models.InventoryItem, now time.Time) []Alert {
	var alerts []Alert
	for _, item := range inventory {
		if !item.LowStock() {
			continue
		}
		qty := strconv.FormatFloat(item.Quantity, 'f', -1, 64)
		alerts = append(alerts, Alert{
			Type:      AlertWarning,
			Title:     "Alerta de Estoque Baixo",
			Message:   fmt.Sprintf("%s está com estoque baixo (%s %s)", item.Name, qty, item.Unit),
			Priority:  PriorityHigh,
			Time:      "Agora",
			Timestamp: now,
		})
	}

	if len(alerts) == 0 {
		return []Alert{{
			Type:      AlertInfo,
			Title:     "Sistema Atualizado",
			Message:   "Todos os estoques estão em níveis adequados.",
			Priority:  PriorityLow,
			Time:      "Agora",
			Timestamp: now,
		}}
	}
	return alerts
}

// LowStockItems filtra o snapshot pelos itens abaixo ou na mínima.
func LowStockItems(inventory []models.InventoryItem) []models.InventoryItem {
	var low []models.InventoryItem
	for _, item := range inventory {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low
}
