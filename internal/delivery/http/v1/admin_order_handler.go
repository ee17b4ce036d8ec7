package v1

import (
	"errors"
	"net/http"
	"time"

	"titoubarz-backend/internal/domain"
	"titoubarz-backend/internal/usecase"
	"titoubarz-backend/pkg/utils"

	"github.com/goccy/go-json"
)

type AdminOrderHandler struct {
	orderUC *usecase.OrderUsecase
}

func NewAdminOrderHandler(uc *usecase.OrderUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{orderUC: uc}
}

// GetOrders handles GET /api/orders
func (h *AdminOrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.OrderFilter{
		Page:   utils.ParseInt(q.Get("page"), 1),
		Limit:  utils.ParseInt(q.Get("limit"), 20),
		Status: q.Get("status"),
		Search: q.Get("search"),
	}

	orders, total, err := h.orderUC.GetOrders(r.Context(), filter)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching orders", err.Error())
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "", map[string]interface{}{
		"orders":     orders,
		"pagination": buildPagination(filter.Page, filter.Limit, total),
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *AdminOrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderUC.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching order", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", order)
}

// UpdateOrderStatus handles PUT /api/orders/{id}/status
func (h *AdminOrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status            *string `json:"status"`
		Notes             *string `json:"notes"`
		TrackingNumber    *string `json:"trackingNumber"`
		EstimatedDelivery *string `json:"estimatedDelivery"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := usecase.OrderPatch{
		Status:         req.Status,
		Notes:          req.Notes,
		TrackingNumber: req.TrackingNumber,
	}
	if req.EstimatedDelivery != nil && *req.EstimatedDelivery != "" {
		t, err := time.Parse(time.RFC3339, *req.EstimatedDelivery)
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Invalid estimated delivery date")
			return
		}
		patch.EstimatedDelivery = &t
	}

	order, err := h.orderUC.UpdateOrder(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error updating order", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Order updated successfully", order)
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *AdminOrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.orderUC.DeleteOrder(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error deleting order", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Order deleted successfully", nil)
}

// GetStats handles GET /api/orders/stats
func (h *AdminOrderHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.orderUC.GetStats(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching order stats", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", stats)
}
