package models

import "time"

type InventoryItem struct {
	ID          uint    `gorm:"primaryKey"`
	UserID      uint    `gorm:"index;not null"`
	Name        string  `gorm:"size:100;not null"`
	Category    string  `gorm:"size:100"`
	Quantity    float64 `gorm:"not null"`
	Unit        string  `gorm:"size:20;not null"` // kg, L, sc, un...
	MinStock    float64 `gorm:"not null;default:0"`
	CostPerUnit float64 `gorm:"not null;default:0"`
	Supplier    string  `gorm:"size:100"`
	ExpiryDate  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock: estoque na mínima conta como baixo (quantidade <= mínimo).
func (i InventoryItem) LowStock() bool {
	return i.Quantity <= i.MinStock
}

// Value é o valor imobilizado do item (quantidade × custo unitário).
func (i InventoryItem) Value() float64 {
	return i.Quantity * i.CostPerUnit
}
