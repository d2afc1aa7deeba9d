package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot es una sub-cantidad trazable de un producto con código y vencimiento comunes.
type Lot struct {
	ID         string
	Code       string
	ProductID  string
	ExpiryDate *time.Time
	Available  decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Description texto "código (vence AAAA-MM-DD)" usado en selectores.
func (l *Lot) Description() string {
	if l.ExpiryDate == nil {
		return l.Code
	}
	return l.Code + " (vence " + l.ExpiryDate.Format("2006-01-02") + ")"
}
