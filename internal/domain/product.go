package domain

import (
	"context"
	"errors"
	"time"
)

// ProductImage keeps the storage metadata next to the public URL so the
// object can be removed from the image host when the product is deleted.
type ProductImage struct {
	URL      string  `json:"url"`
	PublicID *string `json:"publicId"`
	Width    *int    `json:"width"`
	Height   *int    `json:"height"`
	Format   *string `json:"format"`
	Size     *int64  `json:"size"`
}

type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type Product struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Category    string         `json:"category"`
	Featured    bool           `json:"featured"`
	Stock       int            `json:"stock"`
	Images      []ProductImage `json:"images"`
	Rating      Rating         `json:"rating"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type ProductFilter struct {
	Category  string
	Search    string
	MinPrice  float64
	MaxPrice  float64
	Featured  *bool
	SortBy    string // createdAt, price, rating
	SortOrder string // asc, desc
	Limit     int
	Offset    int
}

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	GetAll(ctx context.Context, filter ProductFilter) ([]Product, int64, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	GetFeatured(ctx context.Context) ([]Product, error)
	GetByCategory(ctx context.Context, category string) ([]Product, error)
	GetCategories(ctx context.Context) ([]string, error)
	Search(ctx context.Context, query string) ([]Product, error)
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
}
