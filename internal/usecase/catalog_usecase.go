package usecase

import (
	"context"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	catalogdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/catalog"
	pagingdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/paging"
)

const defaultProductPageSize = 12

type CatalogUsecase interface {
	ListProducts(ctx context.Context, input *catalogdto.ListProductsInput) (*pagingdto.Page[*domain.Product], error)
	GetProductBySlug(ctx context.Context, slug string) (*catalogdto.ProductDetail, error)

	ListAdminProducts(ctx context.Context, actor *domain.Principal, input *catalogdto.ListAdminProductsInput) ([]*domain.Product, error)
	GetProductByID(ctx context.Context, actor *domain.Principal, productID string) (*domain.Product, error)
	UpsertProduct(ctx context.Context, actor *domain.Principal, input *catalogdto.UpsertProductInput) (*domain.Product, error)
}

type DefaultCatalogUsecase struct {
	catalogRepo domain.CatalogRepository
	commentRepo domain.CommentRepository
	effects     AdminEffects
}

func NewDefaultCatalogUsecase(catalogRepo domain.CatalogRepository, commentRepo domain.CommentRepository, effects AdminEffects) *DefaultCatalogUsecase {
	return &DefaultCatalogUsecase{
		catalogRepo: catalogRepo,
		commentRepo: commentRepo,
		effects:     effects,
	}
}

func (uc *DefaultCatalogUsecase) ListProducts(ctx context.Context, input *catalogdto.ListProductsInput) (*pagingdto.Page[*domain.Product], error) {
	page, pageSize := defaultPage(input.Page, input.PageSize, defaultProductPageSize)
	products, total, err := uc.catalogRepo.ListProducts(ctx, domain.ProductFilter{
		Query:    input.Query,
		Status:   domain.ProductStatusActive,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}
	return &pagingdto.Page[*domain.Product]{Items: products, Total: total, Page: page, PageSize: pageSize}, nil
}

func (uc *DefaultCatalogUsecase) GetProductBySlug(ctx context.Context, slug string) (*catalogdto.ProductDetail, error) {
	product, err := uc.catalogRepo.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	target := domain.ProductTarget(product.ID)
	comments, err := uc.commentRepo.ListComments(ctx, domain.CommentFilter{Target: &target, Status: domain.CommentApproved})
	if err != nil {
		return nil, err
	}
	return &catalogdto.ProductDetail{Product: product, Comments: comments}, nil
}

func (uc *DefaultCatalogUsecase) ListAdminProducts(ctx context.Context, actor *domain.Principal, input *catalogdto.ListAdminProductsInput) ([]*domain.Product, error) {
	if err := authorize(actor, domain.StoreRoles); err != nil {
		return nil, err
	}
	filter := domain.ProductFilter{Query: input.Query, MatchSKU: true}
	switch domain.ProductStatus(input.Status) {
	case "", "ALL":
	case domain.ProductStatusActive, domain.ProductStatusInactive:
		filter.Status = domain.ProductStatus(input.Status)
	default:
		return nil, domain.NewValidationError("status", "status must be one of ALL, ACTIVE, INACTIVE")
	}
	products, _, err := uc.catalogRepo.ListProducts(ctx, filter)
	return products, err
}

func (uc *DefaultCatalogUsecase) GetProductByID(ctx context.Context, actor *domain.Principal, productID string) (*domain.Product, error) {
	if err := authorize(actor, domain.StoreRoles); err != nil {
		return nil, err
	}
	return uc.catalogRepo.GetProductByID(ctx, productID)
}

func (uc *DefaultCatalogUsecase) UpsertProduct(ctx context.Context, actor *domain.Principal, input *catalogdto.UpsertProductInput) (*domain.Product, error) {
	if err := authorize(actor, domain.StoreRoles); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	isNew := input.ID == ""
	var existing *domain.Product
	if !isNew {
		var err error
		if existing, err = uc.catalogRepo.GetProductByID(ctx, input.ID); err != nil {
			return nil, err
		}
	}

	product := &domain.Product{
		ID:          input.ID,
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		BasePrice:   input.BasePrice,
		Status:      domain.ProductStatus(input.Status),
		CoverURL:    input.CoverURL,
	}
	if product.Status == "" {
		product.Status = domain.ProductStatusActive
	}
	if existing != nil {
		product.CreatedAt = existing.CreatedAt
	}
	for _, v := range input.Variants {
		options := v.Options
		if options == nil {
			options = map[string]string{}
		}
		product.Variants = append(product.Variants, &domain.ProductVariant{
			ID:      v.ID,
			SKU:     v.SKU,
			Options: options,
			Stock:   v.Stock,
			Price:   v.Price,
		})
	}

	if err := uc.catalogRepo.UpsertProduct(ctx, product); err != nil {
		return nil, err
	}

	action := domain.AuditProductUpdated
	if isNew {
		action = domain.AuditProductCreated
	}
	uc.effects.commit(ctx, actor, auditEntry{
		action:     action,
		targetType: domain.TargetTypeProduct,
		targetID:   product.ID,
		meta:       map[string]any{"slug": product.Slug, "status": product.Status},
	}, "/admin/products", "/admin/products/"+product.ID, "/store", "/store/"+product.Slug)

	return product, nil
}
