package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/trazametal-api/internal/application/dto"
	"github.com/jcastro/trazametal-api/internal/domain"
	"github.com/jcastro/trazametal-api/internal/domain/entity"
	"github.com/jcastro/trazametal-api/internal/domain/repository"
	domtracking "github.com/jcastro/trazametal-api/internal/domain/tracking"
)

// RecordMovementUseCase registra un movimiento de elemento y, en la misma
// transacción, deriva y aplica el nuevo estado/ubicación del elemento según
// el tipo del punto de control destino. El registro de movimientos es
// append-only; no hay validación de transición ni control de concurrencia
// entre movimientos simultáneos del mismo elemento (last-writer-wins).
type RecordMovementUseCase struct {
	txRunner TxRunner
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	ElementID      string
	ToLocationID   string
	FromLocationID *string
	Operation      string
	OperatorID     string
	Comments       string
	PhotoURL       string
	Latitude       *float64
	Longitude      *float64
}

// RecordFromRequest adapta el request HTTP al caso de uso Record.
func (uc *RecordMovementUseCase) RecordFromRequest(ctx context.Context, operatorID string, in dto.RecordMovementRequest) (*entity.Movement, error) {
	return uc.Record(ctx, MovementInput{
		ElementID:      in.ElementID,
		ToLocationID:   in.ToLocationID,
		FromLocationID: in.FromLocationID,
		Operation:      in.Operation,
		OperatorID:     operatorID,
		Comments:       in.Comments,
		PhotoURL:       in.PhotoURL,
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
	})
}

// Record valida la entrada, abre una transacción y dentro de ella:
//  1. Verifica que el elemento y el punto destino existen (la derivación
//     nunca trata un destino inexistente como "storage": se falla todo).
//  2. Inserta el movimiento.
//  3. Deriva el estado por el tipo del punto destino y lo aplica junto con la
//     nueva ubicación.
//
// Si cualquier paso falla, no queda fila de movimiento ni cambio de estado.
func (uc *RecordMovementUseCase) Record(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	if input.ElementID == "" || input.ToLocationID == "" || input.OperatorID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidOperation(input.Operation) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	movement := &entity.Movement{
		ID:             uuid.New().String(),
		ElementID:      input.ElementID,
		FromLocationID: input.FromLocationID,
		ToLocationID:   input.ToLocationID,
		Operation:      input.Operation,
		OperatorID:     input.OperatorID,
		Comments:       input.Comments,
		PhotoURL:       input.PhotoURL,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Date:           now,
		CreatedAt:      now,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		elementRepo repository.ElementRepository,
		pointRepo repository.ControlPointRepository,
	) error {
		element, err := elementRepo.GetByID(input.ElementID)
		if err != nil {
			return err
		}
		if element == nil {
			return domain.ErrNotFound
		}
		toPoint, err := pointRepo.GetByID(input.ToLocationID)
		if err != nil {
			return err
		}
		if toPoint == nil {
			return domain.ErrNotFound
		}
		if input.FromLocationID != nil {
			fromPoint, err := pointRepo.GetByID(*input.FromLocationID)
			if err != nil {
				return err
			}
			if fromPoint == nil {
				return domain.ErrNotFound
			}
		}

		if err := movRepo.Create(movement); err != nil {
			return err
		}

		status := domtracking.DeriveStatus(toPoint.Type)
		return elementRepo.SetStatus(element.ID, status, &toPoint.ID)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// HistoryUseCase consulta de la historia de movimientos de un elemento.
type HistoryUseCase struct {
	movRepo     repository.MovementRepository
	elementRepo repository.ElementRepository
}

// NewHistoryUseCase construye el caso de uso de consulta.
func NewHistoryUseCase(movRepo repository.MovementRepository, elementRepo repository.ElementRepository) *HistoryUseCase {
	return &HistoryUseCase{movRepo: movRepo, elementRepo: elementRepo}
}

// ListByElement devuelve la historia completa del elemento, los movimientos
// más recientes primero. Devuelve ErrNotFound si el elemento no existe.
func (uc *HistoryUseCase) ListByElement(elementID string, limit, offset int) ([]*entity.Movement, error) {
	element, err := uc.elementRepo.GetByID(elementID)
	if err != nil {
		return nil, err
	}
	if element == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movRepo.ListByElement(elementID, limit, offset)
}
