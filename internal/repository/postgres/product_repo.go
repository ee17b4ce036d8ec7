package postgresrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"titoubarz-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) domain.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, description, price, category, featured, stock, images, rating, created_at, updated_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var images, rating []byte
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
		&p.Featured, &p.Stock, &images, &rating, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(images) > 0 {
		json.Unmarshal(images, &p.Images)
	}
	if p.Images == nil {
		p.Images = []domain.ProductImage{}
	}
	if len(rating) > 0 {
		json.Unmarshal(rating, &p.Rating)
	}
	return &p, nil
}

func (r *productRepository) scanProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// --- Query building ---

func buildProductFilter(filter domain.ProductFilter) (string, []any) {
	conditions := []string{}
	args := []any{}

	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Category != "" {
		add("category = $%d", filter.Category)
	}
	if filter.Featured != nil {
		add("featured = $%d", *filter.Featured)
	}
	if filter.MinPrice > 0 {
		add("price >= $%d", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		add("price <= $%d", filter.MaxPrice)
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func productOrderBy(sortBy, sortOrder string) string {
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	switch sortBy {
	case "price":
		return " ORDER BY price " + dir
	case "rating":
		return " ORDER BY (rating->>'average')::numeric " + dir
	default:
		return " ORDER BY created_at " + dir
	}
}

// --- Repository methods ---

func (r *productRepository) GetAll(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error) {
	where, args := buildProductFilter(filter)

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + productColumns + " FROM products" + where + productOrderBy(filter.SortBy, filter.SortOrder)
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	products, err := r.scanProducts(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.db.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *productRepository) GetFeatured(ctx context.Context) ([]domain.Product, error) {
	return r.scanProducts(ctx, "SELECT "+productColumns+" FROM products WHERE featured = true ORDER BY created_at DESC")
}

func (r *productRepository) GetByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return r.scanProducts(ctx, "SELECT "+productColumns+" FROM products WHERE category = $1 ORDER BY created_at DESC", category)
}

func (r *productRepository) GetCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, "SELECT DISTINCT category FROM products ORDER BY category")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *productRepository) Search(ctx context.Context, query string) ([]domain.Product, error) {
	pattern := "%" + query + "%"
	return r.scanProducts(ctx,
		"SELECT "+productColumns+" FROM products WHERE name ILIKE $1 OR description ILIKE $1 ORDER BY created_at DESC",
		pattern)
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	if product.Images == nil {
		product.Images = []domain.ProductImage{}
	}
	images, _ := json.Marshal(product.Images)
	rating, _ := json.Marshal(product.Rating)

	return r.db.QueryRow(ctx, `
		INSERT INTO products (name, description, price, category, featured, stock, images, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		product.Name, product.Description, product.Price, product.Category,
		product.Featured, product.Stock, images, rating,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	if product.Images == nil {
		product.Images = []domain.ProductImage{}
	}
	images, _ := json.Marshal(product.Images)
	rating, _ := json.Marshal(product.Rating)
	product.UpdatedAt = time.Now()

	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $2, description = $3, price = $4, category = $5, featured = $6,
		    stock = $7, images = $8, rating = $9, updated_at = $10
		WHERE id = $1`,
		product.ID, product.Name, product.Description, product.Price, product.Category,
		product.Featured, product.Stock, images, rating, product.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
