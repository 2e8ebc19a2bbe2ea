package dto

import "time"

// CreateControlPointRequest entrada para crear un punto de control.
// El tipo se valida en la frontera contra el conjunto cerrado.
type CreateControlPointRequest struct {
	Name      string   `json:"name" validate:"required,min=1,max=200"`
	Type      string   `json:"type" validate:"required,oneof=factory storage usage_site"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// ControlPointResponse salida de un punto de control.
type ControlPointResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Address   string    `json:"address"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
