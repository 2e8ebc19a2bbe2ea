package dto

import "time"

// RecordMovementRequest entrada para registrar un movimiento de elemento.
type RecordMovementRequest struct {
	ElementID      string   `json:"element_id" validate:"required"`
	ToLocationID   string   `json:"to_location_id" validate:"required"`
	FromLocationID *string  `json:"from_location_id,omitempty"`
	Operation      string   `json:"operation" validate:"required,oneof=reception shipping inventory"`
	Comments       string   `json:"comments"`
	PhotoURL       string   `json:"photo_url"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID             string    `json:"id"`
	ElementID      string    `json:"element_id"`
	FromLocationID *string   `json:"from_location_id,omitempty"`
	ToLocationID   string    `json:"to_location_id"`
	Operation      string    `json:"operation"`
	OperatorID     string    `json:"operator_id"`
	Comments       string    `json:"comments,omitempty"`
	PhotoURL       string    `json:"photo_url,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	Date           time.Time `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
}

// MovementListResponse historia de movimientos de un elemento.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
