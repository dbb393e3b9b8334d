package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "receita"
	TransactionExpense TransactionType = "despesa"
)

type Transaction struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"index;not null"`
	Type        TransactionType `gorm:"size:10;not null"`
	Category    string          `gorm:"size:100;not null"` // texto livre, sem chave para outras tabelas
	Description string          `gorm:"size:255;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Date        time.Time       `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
