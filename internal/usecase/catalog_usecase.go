package usecase

import (
	"context"
	"time"

	"titoubarz-backend/internal/domain"
	"titoubarz-backend/pkg/cache"
	"titoubarz-backend/pkg/logger"
	"titoubarz-backend/pkg/storage"
)

type CatalogUsecase struct {
	productRepo domain.ProductRepository
	storage     *storage.R2Storage
	cache       cache.CacheService
	cacheTTL    time.Duration
}

func NewCatalogUsecase(productRepo domain.ProductRepository, store *storage.R2Storage, cacheService cache.CacheService, cacheTTL time.Duration) *CatalogUsecase {
	return &CatalogUsecase{
		productRepo: productRepo,
		storage:     store,
		cache:       cacheService,
		cacheTTL:    cacheTTL,
	}
}

func (uc *CatalogUsecase) GetProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 12
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.productRepo.GetAll(ctx, filter)
}

func (uc *CatalogUsecase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *CatalogUsecase) GetFeatured(ctx context.Context) ([]domain.Product, error) {
	return uc.productRepo.GetFeatured(ctx)
}

func (uc *CatalogUsecase) GetByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return uc.productRepo.GetByCategory(ctx, category)
}

// GetCategories returns the distinct category list, cached because it only
// changes on catalog edits.
func (uc *CatalogUsecase) GetCategories(ctx context.Context) ([]string, error) {
	if val, found := uc.cache.Get("catalog:categories"); found {
		return val.([]string), nil
	}

	categories, err := uc.productRepo.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	uc.cache.Set("catalog:categories", categories, uc.cacheTTL)
	return categories, nil
}

// Search returns products matching the query. An empty query matches
// nothing rather than everything.
func (uc *CatalogUsecase) Search(ctx context.Context, query string) ([]domain.Product, error) {
	if query == "" {
		return []domain.Product{}, nil
	}
	return uc.productRepo.Search(ctx, query)
}

func (uc *CatalogUsecase) CreateProduct(ctx context.Context, product *domain.Product) error {
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return err
	}
	uc.cache.Delete("catalog:categories")
	return nil
}

func (uc *CatalogUsecase) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return err
	}
	uc.cache.Delete("catalog:categories")
	return nil
}

// DeleteProduct removes the product and then its stored images. Image
// cleanup failures are logged and skipped, the product is already gone.
func (uc *CatalogUsecase) DeleteProduct(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Delete("catalog:categories")

	for _, img := range product.Images {
		if img.PublicID == nil || *img.PublicID == "" {
			continue
		}
		if err := uc.storage.Delete(ctx, *img.PublicID); err != nil {
			logger.Warn().Err(err).Str("product_id", id).Str("object_key", *img.PublicID).
				Msg("Failed to delete product image from storage")
		}
	}
	return nil
}
