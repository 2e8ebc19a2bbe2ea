package tracking

import (
	"context"

	"github.com/jcastro/trazametal-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el alta del movimiento y la
// actualización de estado/ubicación del elemento sean una unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		elementRepo repository.ElementRepository,
		pointRepo repository.ControlPointRepository,
	) error) error
}
