package postgresrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"titoubarz-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type orderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) domain.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, customer, products, order_total, shipping_cost, tax, total_amount,
	status, payment_method, order_date, estimated_delivery, notes, tracking_number, created_at, updated_at`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var customer, products []byte
	err := row.Scan(&o.ID, &customer, &products, &o.OrderTotal, &o.ShippingCost, &o.Tax,
		&o.TotalAmount, &o.Status, &o.PaymentMethod, &o.OrderDate, &o.EstimatedDelivery,
		&o.Notes, &o.TrackingNumber, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	json.Unmarshal(customer, &o.Customer)
	if len(products) > 0 {
		json.Unmarshal(products, &o.Products)
	}
	if o.Products == nil {
		o.Products = []domain.OrderItem{}
	}
	return &o, nil
}

func (r *orderRepository) scanOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	customer, _ := json.Marshal(order.Customer)
	products, _ := json.Marshal(order.Products)

	return r.db.QueryRow(ctx, `
		INSERT INTO orders (customer, products, order_total, shipping_cost, tax, total_amount,
			status, payment_method, estimated_delivery, notes, tracking_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, order_date, created_at, updated_at`,
		customer, products, order.OrderTotal, order.ShippingCost, order.Tax, order.TotalAmount,
		order.Status, order.PaymentMethod, order.EstimatedDelivery, order.Notes, order.TrackingNumber,
	).Scan(&order.ID, &order.OrderDate, &order.CreatedAt, &order.UpdatedAt)
}

func (r *orderRepository) GetAll(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	conditions := []string{}
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(customer->>'fullName' ILIKE $%d OR customer->>'phone' ILIKE $%d)", n, n))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM orders"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + orderColumns + " FROM orders" + where + " ORDER BY created_at DESC"
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.Limit)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	orders, err := r.scanOrders(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	customer, _ := json.Marshal(order.Customer)
	products, _ := json.Marshal(order.Products)

	row := r.db.QueryRow(ctx, `
		UPDATE orders
		SET customer = $2, products = $3, order_total = $4, shipping_cost = $5, tax = $6,
		    total_amount = $7, status = $8, payment_method = $9, estimated_delivery = $10,
		    notes = $11, tracking_number = $12, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		order.ID, customer, products, order.OrderTotal, order.ShippingCost, order.Tax,
		order.TotalAmount, order.Status, order.PaymentMethod, order.EstimatedDelivery,
		order.Notes, order.TrackingNumber)
	if err := row.Scan(&order.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrOrderNotFound
		}
		return err
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepository) GetStats(ctx context.Context) (*domain.OrderStats, error) {
	stats := &domain.OrderStats{
		StatusBreakdown: []domain.StatusCount{},
	}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0), COALESCE(AVG(total_amount), 0)
		FROM orders`).Scan(&stats.TotalOrders, &stats.TotalRevenue, &stats.AverageOrderValue)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, "SELECT status, COUNT(*) FROM orders GROUP BY status ORDER BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var sc domain.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		stats.StatusBreakdown = append(stats.StatusBreakdown, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recent, err := r.scanOrders(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY created_at DESC LIMIT 5")
	if err != nil {
		return nil, err
	}
	stats.RecentOrders = recent

	return stats, nil
}
