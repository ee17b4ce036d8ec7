package usecase

import (
	"context"
	"strings"
	"time"

	"titoubarz-backend/internal/domain"
	"titoubarz-backend/internal/infrastructure/facebook"
	"titoubarz-backend/pkg/cache"
)

type OrderUsecase struct {
	orderRepo domain.OrderRepository
	capi      *facebook.CAPIClient
	cache     cache.CacheService
	cacheTTL  time.Duration
}

func NewOrderUsecase(orderRepo domain.OrderRepository, capi *facebook.CAPIClient, cacheService cache.CacheService, cacheTTL time.Duration) *OrderUsecase {
	return &OrderUsecase{
		orderRepo: orderRepo,
		capi:      capi,
		cache:     cacheService,
		cacheTTL:  cacheTTL,
	}
}

// OrderNumber derives the short human-facing reference from an order ID:
// the last 8 characters, uppercased.
func OrderNumber(orderID string) string {
	if len(orderID) > 8 {
		orderID = orderID[len(orderID)-8:]
	}
	return strings.ToUpper(orderID)
}

// ClientMeta carries request attribution used for conversion tracking.
type ClientMeta struct {
	IP        string
	UserAgent string
}

// Create validates and persists a new order, then reports the purchase to
// the conversions API in the background.
func (uc *OrderUsecase) Create(ctx context.Context, order *domain.Order, meta ClientMeta) error {
	if order.Customer.FullName == "" || len(order.Products) == 0 || order.TotalAmount <= 0 {
		return domain.ErrOrderFieldsRequired
	}

	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = domain.PaymentMethodCOD
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return err
	}
	uc.cache.Delete("orders:stats")

	firstName, lastName := splitName(order.Customer.FullName)
	items := make([]facebook.LineItem, len(order.Products))
	for i, p := range order.Products {
		items[i] = facebook.LineItem{
			ID:       p.ProductID,
			Quantity: p.Quantity,
			Price:    p.Price,
		}
	}
	uc.capi.TrackPurchase(order.ID, order.TotalAmount, "DZD", items, facebook.Customer{
		Phone:     order.Customer.Phone,
		FirstName: firstName,
		LastName:  lastName,
		State:     order.Customer.Wilaya,
		Country:   "dz",
		ClientIP:  meta.IP,
		UserAgent: meta.UserAgent,
	})

	return nil
}

func splitName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func (uc *OrderUsecase) GetOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Status == "all" {
		filter.Status = ""
	}
	return uc.orderRepo.GetAll(ctx, filter)
}

func (uc *OrderUsecase) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return uc.orderRepo.GetByID(ctx, id)
}

// OrderPatch holds the fields an admin may change after checkout. Nil means
// leave the field untouched; Notes and TrackingNumber may be cleared with an
// empty string.
type OrderPatch struct {
	Status            *string
	Notes             *string
	TrackingNumber    *string
	EstimatedDelivery *time.Time
}

func (uc *OrderUsecase) UpdateOrder(ctx context.Context, id string, patch OrderPatch) (*domain.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && *patch.Status != "" {
		order.Status = *patch.Status
	}
	if patch.Notes != nil {
		order.Notes = *patch.Notes
	}
	if patch.TrackingNumber != nil {
		order.TrackingNumber = *patch.TrackingNumber
	}
	if patch.EstimatedDelivery != nil {
		order.EstimatedDelivery = patch.EstimatedDelivery
	}

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	uc.cache.Delete("orders:stats")
	return order, nil
}

func (uc *OrderUsecase) DeleteOrder(ctx context.Context, id string) error {
	if err := uc.orderRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Delete("orders:stats")
	return nil
}

func (uc *OrderUsecase) GetStats(ctx context.Context) (*domain.OrderStats, error) {
	if val, found := uc.cache.Get("orders:stats"); found {
		stats := val.(domain.OrderStats)
		return &stats, nil
	}

	stats, err := uc.orderRepo.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	uc.cache.Set("orders:stats", *stats, uc.cacheTTL)
	return stats, nil
}
