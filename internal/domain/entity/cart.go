package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem representa una línea del carrito de un cliente. El carrito se vacía
// al hacer checkout (se convierte en una orden).
type CartItem struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  decimal.Decimal
	CreatedAt time.Time
}
