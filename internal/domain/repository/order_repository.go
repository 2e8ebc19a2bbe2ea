package repository

import "github.com/jcastro/trazametal-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	Create(order *entity.Order, items []*entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	ListItems(orderID string) ([]*entity.OrderItem, error)
	List(limit, offset int) ([]*entity.Order, error)
	ListByCustomer(customerID string, limit, offset int) ([]*entity.Order, error)
	// SetStatus actualiza el estado; siempre actualiza updated_at.
	SetStatus(id, status string) error
	// AssignFactory asigna la orden a una fábrica.
	AssignFactory(id, factoryID string) error
	CountForYear(year int) (int, error)
}
