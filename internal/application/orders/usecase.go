package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastro/trazametal-api/internal/application/dto"
	"github.com/jcastro/trazametal-api/internal/domain"
	"github.com/jcastro/trazametal-api/internal/domain/entity"
	"github.com/jcastro/trazametal-api/internal/domain/repository"
)

// OrderUseCase flujo de órdenes: checkout desde el carrito, consultas,
// cambio de estado explícito y asignación a fábrica.
type OrderUseCase struct {
	txRunner    CheckoutTxRunner
	orderRepo   repository.OrderRepository
	factoryRepo repository.FactoryRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner CheckoutTxRunner, orderRepo repository.OrderRepository, factoryRepo repository.FactoryRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo, factoryRepo: factoryRepo}
}

// Checkout convierte el carrito del usuario en una orden en estado draft y
// vacía el carrito, todo en una transacción. Los precios y nombres de
// producto se congelan en las líneas de la orden.
func (uc *OrderUseCase) Checkout(ctx context.Context, customerID string, in dto.CheckoutRequest) (*dto.OrderResponse, error) {
	var created *entity.Order
	var createdItems []*entity.OrderItem

	err := uc.txRunner.RunCheckout(ctx, func(
		cartRepo repository.CartRepository,
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error {
		cartItems, err := cartRepo.ListByUser(customerID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return domain.ErrEmptyCart
		}

		now := time.Now()
		count, err := orderRepo.CountForYear(now.Year())
		if err != nil {
			return err
		}
		order := &entity.Order{
			ID:         uuid.New().String(),
			Number:     fmt.Sprintf("ORD-%d-%04d", now.Year(), count+1),
			CustomerID: customerID,
			Status:     entity.OrderStatusDraft,
			Total:      decimal.Zero,
			Comment:    in.Comment,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		items := make([]*entity.OrderItem, 0, len(cartItems))
		for _, ci := range cartItems {
			product, err := productRepo.GetByID(ci.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			subtotal := product.Price.Mul(ci.Quantity)
			items = append(items, &entity.OrderItem{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  ci.Quantity,
				UnitPrice: product.Price,
				Subtotal:  subtotal,
			})
			order.Total = order.Total.Add(subtotal)
		}

		if err := orderRepo.Create(order, items); err != nil {
			return err
		}
		if err := cartRepo.ClearByUser(customerID); err != nil {
			return err
		}
		created = order
		createdItems = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(created, createdItems), nil
}

// GetByID obtiene una orden con sus líneas. Un cliente solo ve sus órdenes.
func (uc *OrderUseCase) GetByID(id, requesterID, requesterRole string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if requesterRole == entity.RoleCustomerOp && order.CustomerID != requesterID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.orderRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// List lista órdenes: los clientes ven solo las suyas, el resto de roles todas.
func (uc *OrderUseCase) List(requesterID, requesterRole string, limit, offset int) (*dto.OrderListResponse, error) {
	var list []*entity.Order
	var err error
	if requesterRole == entity.RoleCustomerOp {
		list, err = uc.orderRepo.ListByCustomer(requesterID, limit, offset)
	} else {
		list, err = uc.orderRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o, nil))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// SetStatus aplica el cambio de estado elegido por el cliente. No hay tabla
// de transiciones; solo la cancelación tiene guarda (estados tempranos).
func (uc *OrderUseCase) SetStatus(id string, in dto.SetOrderStatusRequest) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status == entity.OrderStatusCancelled && !entity.CanCancelFrom(order.Status) {
		return nil, domain.ErrConflict
	}
	if err := uc.orderRepo.SetStatus(id, in.Status); err != nil {
		return nil, err
	}
	order.Status = in.Status
	order.UpdatedAt = time.Now()
	return toOrderResponse(order, nil), nil
}

// AssignFactory asigna la orden a una fábrica y la pasa a sent_to_factory.
func (uc *OrderUseCase) AssignFactory(id string, in dto.AssignFactoryRequest) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	factory, err := uc.factoryRepo.GetByID(in.FactoryID)
	if err != nil {
		return nil, err
	}
	if factory == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.orderRepo.AssignFactory(id, in.FactoryID); err != nil {
		return nil, err
	}
	if err := uc.orderRepo.SetStatus(id, entity.OrderStatusSentToFactory); err != nil {
		return nil, err
	}
	order.FactoryID = &in.FactoryID
	order.Status = entity.OrderStatusSentToFactory
	order.UpdatedAt = time.Now()
	return toOrderResponse(order, nil), nil
}

func toOrderResponse(o *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	resp := &dto.OrderResponse{
		ID:         o.ID,
		Number:     o.Number,
		CustomerID: o.CustomerID,
		FactoryID:  o.FactoryID,
		Status:     o.Status,
		Total:      o.Total,
		Comment:    o.Comment,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return resp
}
