package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastro/trazametal-api/internal/application/dto"
	"github.com/jcastro/trazametal-api/internal/domain"
	"github.com/jcastro/trazametal-api/internal/domain/entity"
	"github.com/jcastro/trazametal-api/internal/domain/repository"
)

// CartUseCase casos de uso del carrito de un cliente.
type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo, productRepo: productRepo}
}

// AddItem añade una línea al carrito del usuario. La cantidad debe ser
// positiva y el producto debe existir en el catálogo.
func (uc *CartUseCase) AddItem(userID string, in dto.AddCartItemRequest) (*dto.CartItemResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	item := &entity.CartItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		CreatedAt: time.Now(),
	}
	if err := uc.cartRepo.AddItem(item); err != nil {
		return nil, err
	}
	return toCartItemResponse(item), nil
}

// RemoveItem elimina una línea del carrito del usuario.
func (uc *CartUseCase) RemoveItem(userID, itemID string) error {
	return uc.cartRepo.RemoveItem(itemID, userID)
}

// Get devuelve el carrito completo del usuario.
func (uc *CartUseCase) Get(userID string) (*dto.CartResponse, error) {
	list, err := uc.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CartItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toCartItemResponse(it))
	}
	return &dto.CartResponse{Items: items}, nil
}

func toCartItemResponse(it *entity.CartItem) *dto.CartItemResponse {
	if it == nil {
		return nil
	}
	return &dto.CartItemResponse{
		ID:        it.ID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		CreatedAt: it.CreatedAt,
	}
}
