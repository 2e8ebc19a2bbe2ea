package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/trazametal-api/internal/application/dto"
	"github.com/jcastro/trazametal-api/internal/domain/entity"
	"github.com/jcastro/trazametal-api/internal/domain/repository"
)

// FactoryUseCase casos de uso del registro de plantas de producción.
type FactoryUseCase struct {
	repo repository.FactoryRepository
}

// NewFactoryUseCase construye el caso de uso.
func NewFactoryUseCase(repo repository.FactoryRepository) *FactoryUseCase {
	return &FactoryUseCase{repo: repo}
}

// Create registra una fábrica.
func (uc *FactoryUseCase) Create(in dto.CreateFactoryRequest) (*dto.FactoryResponse, error) {
	now := time.Now()
	factory := &entity.Factory{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(factory); err != nil {
		return nil, err
	}
	return toFactoryResponse(factory), nil
}

// GetByID obtiene una fábrica por ID.
func (uc *FactoryUseCase) GetByID(id string) (*dto.FactoryResponse, error) {
	factory, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if factory == nil {
		return nil, nil
	}
	return toFactoryResponse(factory), nil
}

// List lista todas las fábricas.
func (uc *FactoryUseCase) List() ([]dto.FactoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.FactoryResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFactoryResponse(f))
	}
	return items, nil
}

func toFactoryResponse(f *entity.Factory) *dto.FactoryResponse {
	if f == nil {
		return nil
	}
	return &dto.FactoryResponse{
		ID:        f.ID,
		Name:      f.Name,
		Address:   f.Address,
		Phone:     f.Phone,
		Email:     f.Email,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
