package domain

import (
	"context"
	"errors"
	"time"
)

type OrderCustomer struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Wilaya   string `json:"wilaya"`
	Address  string `json:"address"`
}

// OrderItem snapshots the product at purchase time; later catalog edits must
// not rewrite past orders.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

type Order struct {
	ID                string        `json:"id"`
	Customer          OrderCustomer `json:"customer"`
	Products          []OrderItem   `json:"products"`
	OrderTotal        float64       `json:"orderTotal"`
	ShippingCost      float64       `json:"shippingCost"`
	Tax               float64       `json:"tax"`
	TotalAmount       float64       `json:"totalAmount"`
	Status            string        `json:"status"`
	PaymentMethod     string        `json:"paymentMethod"`
	OrderDate         time.Time     `json:"orderDate"`
	EstimatedDelivery *time.Time    `json:"estimatedDelivery,omitempty"`
	Notes             string        `json:"notes,omitempty"`
	TrackingNumber    string        `json:"trackingNumber,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

type OrderFilter struct {
	Page   int
	Limit  int
	Status string
	Search string // matches customer full name or phone
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type OrderStats struct {
	TotalOrders       int64         `json:"totalOrders"`
	TotalRevenue      float64       `json:"totalRevenue"`
	AverageOrderValue float64       `json:"averageOrderValue"`
	StatusBreakdown   []StatusCount `json:"statusBreakdown"`
	RecentOrders      []Order       `json:"recentOrders"`
}

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderFieldsRequired = errors.New("missing required order fields")
)

type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	GetAll(ctx context.Context, filter OrderFilter) ([]Order, int64, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	Update(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id string) error
	GetStats(ctx context.Context) (*OrderStats, error)
}
