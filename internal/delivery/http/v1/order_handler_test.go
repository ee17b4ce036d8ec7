package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"titoubarz-backend/internal/domain"
	"titoubarz-backend/internal/infrastructure/cache"
	"titoubarz-backend/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct{}

func (fakeOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	o.ID = "a1b2c3d4-e5f6-7890-abcd-ef0123456789"
	o.OrderDate = time.Now()
	return nil
}
func (fakeOrderRepo) GetAll(ctx context.Context, f domain.OrderFilter) ([]domain.Order, int64, error) {
	return []domain.Order{}, 0, nil
}
func (fakeOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return nil, domain.ErrOrderNotFound
}
func (fakeOrderRepo) Update(ctx context.Context, o *domain.Order) error { return nil }
func (fakeOrderRepo) Delete(ctx context.Context, id string) error       { return nil }
func (fakeOrderRepo) GetStats(ctx context.Context) (*domain.OrderStats, error) {
	return &domain.OrderStats{}, nil
}

func newOrderHandler() *OrderHandler {
	uc := usecase.NewOrderUsecase(fakeOrderRepo{}, nil,
		cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)
	return NewOrderHandler(uc)
}

func TestCreateOrderEndpoint(t *testing.T) {
	h := newOrderHandler()

	body := `{
		"customer": {"fullName": "Amine Benali", "phone": "0550123456", "wilaya": "Alger", "address": "12 Rue Didouche Mourad"},
		"products": [{"productId": "p1", "name": "Whey Protein", "price": 4500, "quantity": 1}],
		"totalAmount": 4950
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateOrder(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Order created successfully", resp.Message)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "a1b2c3d4-e5f6-7890-abcd-ef0123456789", data["orderId"])
	assert.Equal(t, "23456789", data["orderNumber"])
	assert.Equal(t, float64(4950), data["totalAmount"])
	assert.Equal(t, "pending", data["status"])
}

func TestCreateOrderMissingFields(t *testing.T) {
	h := newOrderHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/orders",
		strings.NewReader(`{"customer": {"fullName": ""}, "products": [], "totalAmount": 0}`))
	rec := httptest.NewRecorder()
	h.CreateOrder(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp domain.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Missing required fields", resp.Message)
}

func TestCreateOrderInvalidBody(t *testing.T) {
	h := newOrderHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.CreateOrder(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBuildPagination(t *testing.T) {
	p := buildPagination(1, 20, 45)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = buildPagination(3, 20, 45)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = buildPagination(1, 20, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
