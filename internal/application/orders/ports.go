package orders

import (
	"context"

	"github.com/jcastro/trazametal-api/internal/domain/repository"
)

// CheckoutTxRunner ejecuta el checkout (crear orden + vaciar carrito) dentro
// de una transacción de BD, con repos atados a esa tx.
type CheckoutTxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		cartRepo repository.CartRepository,
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}
