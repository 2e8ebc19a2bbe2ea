package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRequest entrada para convertir el carrito del usuario en una orden.
type CheckoutRequest struct {
	Comment string `json:"comment"`
}

// SetOrderStatusRequest entrada del cambio de estado de una orden
// (transición explícita elegida por el cliente).
type SetOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft sent_to_factory accepted in_production ready_for_marking ready_to_ship packed shipped delivered cancelled"`
}

// AssignFactoryRequest entrada para asignar una orden a una fábrica.
type AssignFactoryRequest struct {
	FactoryID string `json:"factory_id" validate:"required"`
}

// OrderItemResponse línea de una orden.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID        string              `json:"id"`
	Number    string              `json:"number"`
	CustomerID string             `json:"customer_id"`
	FactoryID *string             `json:"factory_id,omitempty"`
	Status    string              `json:"status"`
	Total     decimal.Decimal     `json:"total"`
	Comment   string              `json:"comment,omitempty"`
	Items     []OrderItemResponse `json:"items,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
