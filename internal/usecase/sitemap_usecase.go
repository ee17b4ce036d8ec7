package usecase

import (
	"context"
	"fmt"
	"time"

	"titoubarz-backend/internal/domain"
	"titoubarz-backend/pkg/cache"
)

type SitemapItem struct {
	Loc        string
	LastMod    string
	ChangeFreq string
	Priority   float32
}

type SitemapUsecase struct {
	productRepo domain.ProductRepository
	baseURL     string
	cache       cache.CacheService
	cacheTTL    time.Duration
}

func NewSitemapUsecase(repo domain.ProductRepository, baseURL string, cacheService cache.CacheService, cacheTTL time.Duration) *SitemapUsecase {
	return &SitemapUsecase{
		productRepo: repo,
		baseURL:     baseURL,
		cache:       cacheService,
		cacheTTL:    cacheTTL,
	}
}

func (u *SitemapUsecase) GenerateSitemap(ctx context.Context) ([]SitemapItem, error) {
	key := "sitemap:items"
	if val, found := u.cache.Get(key); found {
		return val.([]SitemapItem), nil
	}

	var items []SitemapItem
	now := time.Now().Format("2006-01-02")

	// Static storefront pages; root gets top priority.
	statics := []string{"", "/products", "/delivery", "/about", "/contact"}
	for _, s := range statics {
		items = append(items, SitemapItem{
			Loc:        u.baseURL + s,
			LastMod:    now,
			ChangeFreq: "daily",
			Priority:   0.8,
		})
	}
	items[0].Priority = 1.0

	products, _, err := u.productRepo.GetAll(ctx, domain.ProductFilter{Limit: 2000})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	for _, p := range products {
		items = append(items, SitemapItem{
			Loc:        fmt.Sprintf("%s/product/%s", u.baseURL, p.ID),
			LastMod:    p.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   0.9,
		})
	}

	categories, err := u.productRepo.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	for _, c := range categories {
		items = append(items, SitemapItem{
			Loc:        fmt.Sprintf("%s/category/%s", u.baseURL, c),
			LastMod:    now,
			ChangeFreq: "daily",
			Priority:   0.8,
		})
	}

	u.cache.Set(key, items, u.cacheTTL)
	return items, nil
}
