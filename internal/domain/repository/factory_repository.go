package repository

import "github.com/jcastro/trazametal-api/internal/domain/entity"

// FactoryRepository define el puerto de persistencia para Factory.
type FactoryRepository interface {
	Create(factory *entity.Factory) error
	GetByID(id string) (*entity.Factory, error)
	List() ([]*entity.Factory, error)
}
