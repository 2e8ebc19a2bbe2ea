package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/trazametal-api/internal/application/dto"
	"github.com/jcastro/trazametal-api/internal/domain"
	"github.com/jcastro/trazametal-api/internal/domain/entity"
	"github.com/jcastro/trazametal-api/internal/domain/repository"
)

// ElementUseCase casos de uso del registro de elementos: marcado (alta),
// consultas y override administrativo de estado.
type ElementUseCase struct {
	repo repository.ElementRepository
}

// NewElementUseCase construye el caso de uso.
func NewElementUseCase(repo repository.ElementRepository) *ElementUseCase {
	return &ElementUseCase{repo: repo}
}

// Create da de alta (marca) un elemento. El estado inicial siempre es
// production y sin ubicación. Devuelve ErrCodeAlreadyExists si el código ya
// está registrado.
func (uc *ElementUseCase) Create(userID string, in dto.CreateElementRequest) (*dto.ElementResponse, error) {
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCodeAlreadyExists
	}
	now := time.Now()
	element := &entity.Element{
		ID:         uuid.New().String(),
		Code:       in.Code,
		Type:       in.Type,
		Status:     entity.StatusProduction,
		DrawingRef: in.DrawingRef,
		Batch:      in.Batch,
		GOST:       in.GOST,
		Length:     in.Length,
		Width:      in.Width,
		Height:     in.Height,
		Weight:     in.Weight,
		LocationID: nil,
		CreatedBy:  userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(element); err != nil {
		return nil, err
	}
	return toElementResponse(element), nil
}

// GetByID obtiene un elemento por ID.
func (uc *ElementUseCase) GetByID(id string) (*dto.ElementResponse, error) {
	element, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if element == nil {
		return nil, nil
	}
	return toElementResponse(element), nil
}

// GetByCode obtiene un elemento por su código de marcado.
func (uc *ElementUseCase) GetByCode(code string) (*dto.ElementResponse, error) {
	element, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if element == nil {
		return nil, nil
	}
	return toElementResponse(element), nil
}

// List lista elementos con filtros opcionales (AND), los más recientes primero.
func (uc *ElementUseCase) List(in dto.ElementFilterRequest, limit, offset int) (*dto.ElementListResponse, error) {
	filter := repository.ElementFilter{
		Status:     in.Status,
		Type:       in.Type,
		LocationID: in.LocationID,
	}
	list, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ElementResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toElementResponse(e))
	}
	return &dto.ElementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// SetStatus aplica el override administrativo: fija cualquier estado del
// conjunto sin validar la transición (puentea la regla de derivación).
func (uc *ElementUseCase) SetStatus(id string, in dto.SetElementStatusRequest) (*dto.ElementResponse, error) {
	element, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if element == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.SetStatus(id, in.Status, in.LocationID); err != nil {
		return nil, err
	}
	element, err = uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toElementResponse(element), nil
}

func toElementResponse(e *entity.Element) *dto.ElementResponse {
	if e == nil {
		return nil
	}
	return &dto.ElementResponse{
		ID:         e.ID,
		Code:       e.Code,
		Type:       e.Type,
		Status:     e.Status,
		DrawingRef: e.DrawingRef,
		Batch:      e.Batch,
		GOST:       e.GOST,
		Length:     e.Length,
		Width:      e.Width,
		Height:     e.Height,
		Weight:     e.Weight,
		LocationID: e.LocationID,
		CreatedBy:  e.CreatedBy,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
