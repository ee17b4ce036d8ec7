package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"titoubarz-backend/internal/domain"
	"titoubarz-backend/internal/infrastructure/cache"
	"titoubarz-backend/internal/repository/staticdata"
	"titoubarz-backend/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeliveryRouter(t *testing.T) http.Handler {
	t.Helper()
	memCache := cache.NewMemoryCache(time.Minute, time.Minute)
	uc := usecase.NewDeliveryUsecase(staticdata.NewWilayaRepository(), memCache, time.Minute)
	h := NewDeliveryHandler(uc)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/delivery/wilayas", h.GetWilayas)
	mux.HandleFunc("GET /api/delivery/wilayas/{id}", h.GetWilayaByID)
	mux.HandleFunc("GET /api/delivery/wilayas/{id}/communes", h.GetCommunes)
	mux.HandleFunc("POST /api/delivery/calculate", h.CalculatePrice)
	mux.HandleFunc("GET /api/delivery/zones", h.GetZones)
	mux.HandleFunc("GET /api/delivery/search", h.SearchWilayas)
	mux.HandleFunc("GET /api/delivery/stats", h.GetStats)
	return mux
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) (*httptest.ResponseRecorder, domain.Response) {
	t.Helper()
	var reqBody *strings.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	} else {
		reqBody = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reqBody)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp domain.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestGetWilayasEndpoint(t *testing.T) {
	router := newDeliveryRouter(t)
	rec, resp := doRequest(t, router, http.MethodGet, "/api/delivery/wilayas", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	wilayas, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, wilayas, 58)
}

func TestGetWilayaByIDEndpoint(t *testing.T) {
	router := newDeliveryRouter(t)

	rec, resp := doRequest(t, router, http.MethodGet, "/api/delivery/wilayas/16", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	rec, resp = doRequest(t, router, http.MethodGet, "/api/delivery/wilayas/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Wilaya not found", resp.Message)
}

func TestGetCommunesEndpoint(t *testing.T) {
	router := newDeliveryRouter(t)

	rec, resp := doRequest(t, router, http.MethodGet, "/api/delivery/wilayas/16/communes", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Alger", data["wilaya"])
	assert.Equal(t, float64(450), data["deliveryPrice"])
	assert.NotEmpty(t, data["communes"])

	rec, resp = doRequest(t, router, http.MethodGet, "/api/delivery/wilayas/99/communes", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Wilaya not found", resp.Message)
}

func TestCalculatePriceEndpoint(t *testing.T) {
	router := newDeliveryRouter(t)

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{
			name:   "valid quote",
			body:   `{"wilayaId":"16","commune":"Alger Centre","orderValue":100}`,
			status: http.StatusOK,
		},
		{
			name:    "missing fields",
			body:    `{"wilayaId":"","commune":""}`,
			status:  http.StatusBadRequest,
			message: "Wilaya ID and commune are required",
		},
		{
			name:    "unknown wilaya",
			body:    `{"wilayaId":"99","commune":"Alger Centre"}`,
			status:  http.StatusNotFound,
			message: "Wilaya not found",
		},
		{
			name:    "commune not in wilaya",
			body:    `{"wilayaId":"16","commune":"Oran"}`,
			status:  http.StatusBadRequest,
			message: "Commune not found in the specified wilaya",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := doRequest(t, router, http.MethodPost, "/api/delivery/calculate", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			if tt.message != "" {
				assert.False(t, resp.Success)
				assert.Equal(t, tt.message, resp.Message)
				return
			}

			assert.True(t, resp.Success)
			data, ok := resp.Data.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "Alger", data["wilaya"])
			assert.Equal(t, float64(450), data["deliveryPrice"])
			assert.Equal(t, float64(1), data["estimatedDays"])
			assert.Equal(t, false, data["freeDelivery"])
			assert.Equal(t, float64(550), data["totalWithDelivery"])
		})
	}
}

func TestGetZonesEndpoint(t *testing.T) {
	router := newDeliveryRouter(t)
	rec, resp := doRequest(t, router, http.MethodGet, "/api/delivery/zones", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, data, "immediate")
	assert.Contains(t, data, "standard")
	assert.Contains(t, data, "remote")
}

func TestSearchEndpoint(t *testing.T) {
	router := newDeliveryRouter(t)

	rec, resp := doRequest(t, router, http.MethodGet, "/api/delivery/search?q=alger", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data)

	rec, resp = doRequest(t, router, http.MethodGet, "/api/delivery/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Search query is required", resp.Message)
}

func TestDeliveryStatsEndpoint(t *testing.T) {
	router := newDeliveryRouter(t)
	rec, resp := doRequest(t, router, http.MethodGet, "/api/delivery/stats", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(58), data["totalWilayas"])

	coverage, ok := data["coverage"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(100), coverage["percentage"])
	assert.Equal(t, float64(58), coverage["totalAlgerianWilayas"])
}
