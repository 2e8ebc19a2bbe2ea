package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateElementRequest entrada para crear (marcar) un elemento.
type CreateElementRequest struct {
	Code       string           `json:"code" validate:"required,min=1,max=100"`
	Type       string           `json:"type" validate:"required,oneof=beam column truss connection"`
	DrawingRef string           `json:"drawing_ref"`
	Batch      string           `json:"batch"`
	GOST       string           `json:"gost"`
	Length     *decimal.Decimal `json:"length,omitempty"`
	Width      *decimal.Decimal `json:"width,omitempty"`
	Height     *decimal.Decimal `json:"height,omitempty"`
	Weight     *decimal.Decimal `json:"weight,omitempty"`
}

// SetElementStatusRequest entrada del override administrativo de estado.
// No hay chequeo de legalidad de transición: cualquier estado del conjunto
// es aceptado desde cualquier estado previo.
type SetElementStatusRequest struct {
	Status     string  `json:"status" validate:"required,oneof=production ready_to_ship in_transit in_storage in_assembly in_operation"`
	LocationID *string `json:"location_id,omitempty"`
}

// ElementFilterRequest filtros de listado (query params, combinados con AND).
type ElementFilterRequest struct {
	Status     string `query:"status" validate:"omitempty,oneof=production ready_to_ship in_transit in_storage in_assembly in_operation"`
	Type       string `query:"type" validate:"omitempty,oneof=beam column truss connection"`
	LocationID string `query:"location_id"`
}

// ElementResponse salida de un elemento.
type ElementResponse struct {
	ID         string           `json:"id"`
	Code       string           `json:"code"`
	Type       string           `json:"type"`
	Status     string           `json:"status"`
	DrawingRef string           `json:"drawing_ref,omitempty"`
	Batch      string           `json:"batch,omitempty"`
	GOST       string           `json:"gost,omitempty"`
	Length     *decimal.Decimal `json:"length,omitempty"`
	Width      *decimal.Decimal `json:"width,omitempty"`
	Height     *decimal.Decimal `json:"height,omitempty"`
	Weight     *decimal.Decimal `json:"weight,omitempty"`
	LocationID *string          `json:"location_id,omitempty"`
	CreatedBy  string           `json:"created_by,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// ElementListResponse lista paginada de elementos.
type ElementListResponse struct {
	Items []ElementResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
