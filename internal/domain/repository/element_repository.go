package repository

import "github.com/jcastro/trazametal-api/internal/domain/entity"

// ElementFilter filtros opcionales para listar elementos; los campos vacíos no
// restringen. Los filtros se combinan con AND.
type ElementFilter struct {
	Status     string
	Type       string
	LocationID string
}

// ElementRepository define el puerto de persistencia para Element.
type ElementRepository interface {
	Create(element *entity.Element) error
	GetByID(id string) (*entity.Element, error)
	GetByCode(code string) (*entity.Element, error)
	// List devuelve los elementos que cumplen el filtro, los más recientes primero.
	List(filter ElementFilter, limit, offset int) ([]*entity.Element, error)
	// SetStatus actualiza estado y, si locationID no es nil, la ubicación actual.
	// Siempre actualiza updated_at.
	SetStatus(id, status string, locationID *string) error
}
