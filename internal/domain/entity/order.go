package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del flujo de órdenes de producción. Las transiciones las elige el
// cliente de forma explícita (no hay derivación); solo la cancelación tiene
// guarda: únicamente desde estados tempranos.
const (
	OrderStatusDraft           = "draft"
	OrderStatusSentToFactory   = "sent_to_factory"
	OrderStatusAccepted        = "accepted"
	OrderStatusInProduction    = "in_production"
	OrderStatusReadyForMarking = "ready_for_marking"
	OrderStatusReadyToShip     = "ready_to_ship"
	OrderStatusPacked          = "packed"
	OrderStatusShipped         = "shipped"
	OrderStatusDelivered       = "delivered"
	OrderStatusCancelled       = "cancelled"
)

// ValidOrderStatuses conjunto cerrado de estados de orden.
var ValidOrderStatuses = []string{
	OrderStatusDraft,
	OrderStatusSentToFactory,
	OrderStatusAccepted,
	OrderStatusInProduction,
	OrderStatusReadyForMarking,
	OrderStatusReadyToShip,
	OrderStatusPacked,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValidOrderStatus verifica pertenencia al conjunto de estados de orden.
func IsValidOrderStatus(status string) bool {
	for _, s := range ValidOrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// CanCancelFrom indica si una orden en el estado dado admite cancelación.
// Solo los estados tempranos (antes de producción) son cancelables.
func CanCancelFrom(status string) bool {
	switch status {
	case OrderStatusDraft, OrderStatusSentToFactory, OrderStatusAccepted:
		return true
	}
	return false
}

// Order representa una orden de cliente; puede asignarse a una fábrica.
type Order struct {
	ID         string
	Number     string // consecutivo legible, ej. "ORD-2024-0001"
	CustomerID string // UserID del cliente
	FactoryID  *string
	Status     string
	Total      decimal.Decimal
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderItem línea de una orden, congelada al momento del checkout.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Name      string // nombre del producto al momento del checkout
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
