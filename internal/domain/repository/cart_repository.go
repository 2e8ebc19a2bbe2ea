package repository

import "github.com/jcastro/trazametal-api/internal/domain/entity"

// CartRepository define el puerto de persistencia para el carrito.
type CartRepository interface {
	AddItem(item *entity.CartItem) error
	RemoveItem(id, userID string) error
	ListByUser(userID string) ([]*entity.CartItem, error)
	ClearByUser(userID string) error
}
