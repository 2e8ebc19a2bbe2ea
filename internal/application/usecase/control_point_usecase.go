package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/trazametal-api/internal/application/dto"
	"github.com/jcastro/trazametal-api/internal/domain/entity"
	"github.com/jcastro/trazametal-api/internal/domain/repository"
)

// ControlPointUseCase casos de uso del registro de puntos de control.
type ControlPointUseCase struct {
	repo repository.ControlPointRepository
}

// NewControlPointUseCase construye el caso de uso.
func NewControlPointUseCase(repo repository.ControlPointRepository) *ControlPointUseCase {
	return &ControlPointUseCase{repo: repo}
}

// Create registra un punto de control. name y type son obligatorios; el tipo
// ya llega validado contra el conjunto cerrado en la frontera HTTP.
func (uc *ControlPointUseCase) Create(in dto.CreateControlPointRequest) (*dto.ControlPointResponse, error) {
	now := time.Now()
	point := &entity.ControlPoint{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Type:      in.Type,
		Address:   in.Address,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(point); err != nil {
		return nil, err
	}
	return toControlPointResponse(point), nil
}

// GetByID obtiene un punto de control por ID.
func (uc *ControlPointUseCase) GetByID(id string) (*dto.ControlPointResponse, error) {
	point, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if point == nil {
		return nil, nil
	}
	return toControlPointResponse(point), nil
}

// List lista todos los puntos de control.
func (uc *ControlPointUseCase) List() ([]dto.ControlPointResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ControlPointResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toControlPointResponse(p))
	}
	return items, nil
}

func toControlPointResponse(p *entity.ControlPoint) *dto.ControlPointResponse {
	if p == nil {
		return nil
	}
	return &dto.ControlPointResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		Address:   p.Address,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
