package entity

import "time"

// Factory representa una planta de producción a la que se asignan órdenes.
type Factory struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
