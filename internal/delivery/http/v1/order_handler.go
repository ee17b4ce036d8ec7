package v1

import (
	"errors"
	"net/http"

	"titoubarz-backend/internal/delivery/http/middleware"
	"titoubarz-backend/internal/domain"
	"titoubarz-backend/internal/usecase"
	"titoubarz-backend/pkg/utils"

	"github.com/goccy/go-json"
)

type OrderHandler struct {
	orderUC *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUC: uc}
}

// CreateOrder handles POST /api/orders, the checkout endpoint.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Customer      domain.OrderCustomer `json:"customer"`
		Products      []domain.OrderItem   `json:"products"`
		OrderTotal    float64              `json:"orderTotal"`
		ShippingCost  float64              `json:"shippingCost"`
		Tax           float64              `json:"tax"`
		TotalAmount   float64              `json:"totalAmount"`
		PaymentMethod string               `json:"paymentMethod"`
		Notes         string               `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order := &domain.Order{
		Customer:      req.Customer,
		Products:      req.Products,
		OrderTotal:    req.OrderTotal,
		ShippingCost:  req.ShippingCost,
		Tax:           req.Tax,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}

	meta := usecase.ClientMeta{
		IP:        middleware.GetClientIP(r),
		UserAgent: r.UserAgent(),
	}
	if err := h.orderUC.Create(r.Context(), order, meta); err != nil {
		if errors.Is(err, domain.ErrOrderFieldsRequired) {
			utils.WriteError(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error creating order", err.Error())
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, "Order created successfully", map[string]interface{}{
		"orderId":     order.ID,
		"orderNumber": usecase.OrderNumber(order.ID),
		"totalAmount": order.TotalAmount,
		"status":      order.Status,
	})
}
