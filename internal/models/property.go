package models

import "time"

type PropertyStatus string

const (
	PropertyStatusActive    PropertyStatus = "Ativa"
	PropertyStatusPreparing PropertyStatus = "Preparando"
	PropertyStatusInactive  PropertyStatus = "Inativa"
)

type Property struct {
	ID           uint           `gorm:"primaryKey"`
	UserID       uint           `gorm:"index;not null"`
	Name         string         `gorm:"size:100;not null"`
	Location     string         `gorm:"size:255"`
	Area         float64        `gorm:"not null"`        // hectares
	Crops        []string       `gorm:"serializer:json"` // nomes das culturas, ordem preservada
	Status       PropertyStatus `gorm:"size:20;not null;default:Ativa"`
	Productivity string         `gorm:"size:100"` // descritor livre de rendimento (ex: "55 sc/ha")
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
