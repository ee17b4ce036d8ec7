package usecase

import (
	"context"
	"testing"
	"time"

	"titoubarz-backend/internal/domain"
	"titoubarz-backend/internal/infrastructure/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderNumber(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"a1b2c3d4-e5f6-7890-abcd-ef0123456789", "23456789"},
		{"abc123", "ABC123"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OrderNumber(tt.id))
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		full  string
		first string
		last  string
	}{
		{"Amine Benali", "Amine", "Benali"},
		{"Amine", "Amine", ""},
		{"Mohamed El Amine Benali", "Mohamed", "El Amine Benali"},
		{"  Amine   Benali  ", "Amine", "Benali"},
		{"", "", ""},
	}
	for _, tt := range tests {
		first, last := splitName(tt.full)
		assert.Equal(t, tt.first, first)
		assert.Equal(t, tt.last, last)
	}
}

type stubOrderRepo struct {
	created *domain.Order
}

func (s *stubOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	o.ID = "a1b2c3d4-e5f6-7890-abcd-ef0123456789"
	o.OrderDate = time.Now()
	s.created = o
	return nil
}
func (s *stubOrderRepo) GetAll(ctx context.Context, f domain.OrderFilter) ([]domain.Order, int64, error) {
	return nil, 0, nil
}
func (s *stubOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return nil, domain.ErrOrderNotFound
}
func (s *stubOrderRepo) Update(ctx context.Context, o *domain.Order) error { return nil }
func (s *stubOrderRepo) Delete(ctx context.Context, id string) error       { return nil }
func (s *stubOrderRepo) GetStats(ctx context.Context) (*domain.OrderStats, error) {
	return &domain.OrderStats{}, nil
}

func newOrderUC(repo domain.OrderRepository) *OrderUsecase {
	return NewOrderUsecase(repo, nil, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)
}

func validOrder() *domain.Order {
	return &domain.Order{
		Customer: domain.OrderCustomer{
			FullName: "Amine Benali",
			Phone:    "0550123456",
			Wilaya:   "Alger",
			Address:  "12 Rue Didouche Mourad",
		},
		Products: []domain.OrderItem{
			{ProductID: "p1", Name: "Whey Protein", Price: 4500, Quantity: 1},
		},
		TotalAmount: 4950,
	}
}

func TestCreateOrderValidation(t *testing.T) {
	uc := newOrderUC(&stubOrderRepo{})
	meta := ClientMeta{IP: "203.0.113.7", UserAgent: "test"}

	missingName := validOrder()
	missingName.Customer.FullName = ""
	assert.ErrorIs(t, uc.Create(context.Background(), missingName, meta), domain.ErrOrderFieldsRequired)

	noProducts := validOrder()
	noProducts.Products = nil
	assert.ErrorIs(t, uc.Create(context.Background(), noProducts, meta), domain.ErrOrderFieldsRequired)

	zeroTotal := validOrder()
	zeroTotal.TotalAmount = 0
	assert.ErrorIs(t, uc.Create(context.Background(), zeroTotal, meta), domain.ErrOrderFieldsRequired)
}

func TestCreateOrderDefaults(t *testing.T) {
	repo := &stubOrderRepo{}
	uc := newOrderUC(repo)

	order := validOrder()
	require.NoError(t, uc.Create(context.Background(), order, ClientMeta{}))

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.OrderStatusPending, repo.created.Status)
	assert.Equal(t, domain.PaymentMethodCOD, repo.created.PaymentMethod)
	assert.NotEmpty(t, order.ID)
}

func TestCreateOrderKeepsExplicitValues(t *testing.T) {
	repo := &stubOrderRepo{}
	uc := newOrderUC(repo)

	order := validOrder()
	order.Status = domain.OrderStatusConfirmed
	order.PaymentMethod = domain.PaymentMethodBankTransfer
	require.NoError(t, uc.Create(context.Background(), order, ClientMeta{}))

	assert.Equal(t, domain.OrderStatusConfirmed, repo.created.Status)
	assert.Equal(t, domain.PaymentMethodBankTransfer, repo.created.PaymentMethod)
}
