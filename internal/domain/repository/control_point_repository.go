package repository

import "github.com/jcastro/trazametal-api/internal/domain/entity"

// ControlPointRepository define el puerto de persistencia para ControlPoint.
type ControlPointRepository interface {
	Create(point *entity.ControlPoint) error
	GetByID(id string) (*entity.ControlPoint, error)
	List() ([]*entity.ControlPoint, error)
}
