package repository

import "github.com/jcastro/trazametal-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para Movement.
// Los movimientos son append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// ListByElement devuelve la historia completa de un elemento,
	// los más recientes primero.
	ListByElement(elementID string, limit, offset int) ([]*entity.Movement, error)
}
