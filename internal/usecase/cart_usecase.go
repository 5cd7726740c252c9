package usecase

import (
	"context"
	"errors"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	cartdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/cart"
	"github.com/google/uuid"
)

type CartUsecase interface {
	GetOrCreateCart(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, input *cartdto.AddItemInput) (*domain.Cart, error)
	UpdateItem(ctx context.Context, userID, itemID string, input *cartdto.UpdateItemInput) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID string) (*domain.Cart, error)
}

// DefaultCartUsecase checks quantities against live stock on every write.
// Stock is not reserved; checkout re-checks it inside its transaction.
type DefaultCartUsecase struct {
	cartRepo    domain.CartRepository
	catalogRepo domain.CatalogRepository
}

func NewDefaultCartUsecase(cartRepo domain.CartRepository, catalogRepo domain.CatalogRepository) *DefaultCartUsecase {
	return &DefaultCartUsecase{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
	}
}

func (uc *DefaultCartUsecase) GetOrCreateCart(ctx context.Context, userID string) (*domain.Cart, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	cart, err := uc.cartRepo.GetCartByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if err := uc.cartRepo.CreateCart(ctx, &domain.Cart{ID: uuid.New().String(), UserID: userID}); err != nil {
		return nil, err
	}
	// a concurrent request may have won the insert, so read back whichever row exists
	return uc.cartRepo.GetCartByUserID(ctx, userID)
}

func (uc *DefaultCartUsecase) AddItem(ctx context.Context, userID string, input *cartdto.AddItemInput) (*domain.Cart, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	variant, err := uc.catalogRepo.GetVariantByID(ctx, input.ProductVariantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrVariantNotFound
		}
		return nil, err
	}
	if variant.Stock < input.Qty {
		return nil, domain.ErrInsufficientStock
	}

	cart, err := uc.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing := cart.FindVariant(variant.ID); existing != nil {
		qty := existing.Qty + input.Qty
		if qty > variant.Stock {
			return nil, domain.ErrInsufficientStock
		}
		if err := uc.cartRepo.UpdateCartItemQty(ctx, existing.ID, qty); err != nil {
			return nil, err
		}
	} else {
		if err := uc.cartRepo.CreateCartItem(ctx, &domain.CartItem{
			ID:               uuid.New().String(),
			CartID:           cart.ID,
			ProductVariantID: variant.ID,
			Qty:              input.Qty,
		}); err != nil {
			return nil, err
		}
	}
	return uc.cartRepo.GetCartByUserID(ctx, userID)
}

func (uc *DefaultCartUsecase) UpdateItem(ctx context.Context, userID, itemID string, input *cartdto.UpdateItemInput) (*domain.Cart, error) {
	cart, err := uc.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	item := cart.FindItem(itemID)
	if item == nil {
		return nil, domain.ErrCartItemNotFound
	}

	if input.Qty <= 0 {
		if err := uc.cartRepo.DeleteCartItem(ctx, item.ID); err != nil {
			return nil, err
		}
		return uc.cartRepo.GetCartByUserID(ctx, userID)
	}

	variant, err := uc.catalogRepo.GetVariantByID(ctx, item.ProductVariantID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if variant == nil || variant.Stock < input.Qty {
		return nil, domain.ErrInsufficientStock
	}
	if err := uc.cartRepo.UpdateCartItemQty(ctx, item.ID, input.Qty); err != nil {
		return nil, err
	}
	return uc.cartRepo.GetCartByUserID(ctx, userID)
}

func (uc *DefaultCartUsecase) RemoveItem(ctx context.Context, userID, itemID string) (*domain.Cart, error) {
	cart, err := uc.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart.FindItem(itemID) == nil {
		return nil, domain.ErrCartItemNotFound
	}
	if err := uc.cartRepo.DeleteCartItem(ctx, itemID); err != nil {
		return nil, err
	}
	return uc.cartRepo.GetCartByUserID(ctx, userID)
}
