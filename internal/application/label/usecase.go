package label

import (
	"context"

	"github.com/jcastro/trazametal-api/internal/domain"
	"github.com/jcastro/trazametal-api/internal/domain/entity"
	"github.com/jcastro/trazametal-api/internal/domain/repository"
)

// LabelGenerator genera la etiqueta de marcado (PDF con símbolo DataMatrix
// del código) para un elemento.
type LabelGenerator interface {
	GenerateElementLabel(ctx context.Context, element *entity.Element, location *entity.ControlPoint) ([]byte, error)
}

// LabelUseCase produce la etiqueta imprimible de un elemento.
type LabelUseCase struct {
	elementRepo repository.ElementRepository
	pointRepo   repository.ControlPointRepository
	generator   LabelGenerator
}

// NewLabelUseCase construye el caso de uso.
func NewLabelUseCase(elementRepo repository.ElementRepository, pointRepo repository.ControlPointRepository, generator LabelGenerator) *LabelUseCase {
	return &LabelUseCase{elementRepo: elementRepo, pointRepo: pointRepo, generator: generator}
}

// Generate busca el elemento (y su ubicación actual si tiene) y genera el PDF.
func (uc *LabelUseCase) Generate(ctx context.Context, elementID string) ([]byte, error) {
	element, err := uc.elementRepo.GetByID(elementID)
	if err != nil {
		return nil, err
	}
	if element == nil {
		return nil, domain.ErrNotFound
	}
	var location *entity.ControlPoint
	if element.LocationID != nil {
		location, err = uc.pointRepo.GetByID(*element.LocationID)
		if err != nil {
			return nil, err
		}
	}
	return uc.generator.GenerateElementLabel(ctx, element, location)
}
