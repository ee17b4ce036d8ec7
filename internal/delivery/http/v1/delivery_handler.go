package v1

import (
	"errors"
	"net/http"

	"titoubarz-backend/internal/domain"
	"titoubarz-backend/internal/usecase"
	"titoubarz-backend/pkg/utils"

	"github.com/goccy/go-json"
)

type DeliveryHandler struct {
	deliveryUC *usecase.DeliveryUsecase
}

func NewDeliveryHandler(uc *usecase.DeliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{deliveryUC: uc}
}

// GetWilayas handles GET /api/delivery/wilayas
func (h *DeliveryHandler) GetWilayas(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, "", h.deliveryUC.GetWilayas())
}

// GetWilayaByID handles GET /api/delivery/wilayas/{id}
func (h *DeliveryHandler) GetWilayaByID(w http.ResponseWriter, r *http.Request) {
	wilaya, err := h.deliveryUC.GetWilaya(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "Wilaya not found")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", wilaya)
}

// GetCommunes handles GET /api/delivery/wilayas/{id}/communes
func (h *DeliveryHandler) GetCommunes(w http.ResponseWriter, r *http.Request) {
	communes, err := h.deliveryUC.GetCommunes(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "Wilaya not found")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", communes)
}

// CalculatePrice handles POST /api/delivery/calculate
func (h *DeliveryHandler) CalculatePrice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WilayaID   string  `json:"wilayaId"`
		Commune    string  `json:"commune"`
		OrderValue float64 `json:"orderValue"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quote, err := h.deliveryUC.Quote(req.WilayaID, req.Commune, req.OrderValue)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrQuoteFieldsRequired):
			utils.WriteError(w, http.StatusBadRequest, "Wilaya ID and commune are required")
		case errors.Is(err, domain.ErrWilayaNotFound):
			utils.WriteError(w, http.StatusNotFound, "Wilaya not found")
		case errors.Is(err, domain.ErrCommuneNotInWilaya):
			utils.WriteError(w, http.StatusBadRequest, "Commune not found in the specified wilaya")
		default:
			utils.WriteError(w, http.StatusInternalServerError, "Error calculating delivery price", err.Error())
		}
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "", quote)
}

// GetZones handles GET /api/delivery/zones
func (h *DeliveryHandler) GetZones(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, "", h.deliveryUC.GetZones())
}

// GetStats handles GET /api/delivery/stats (admin)
func (h *DeliveryHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, "", h.deliveryUC.GetStats())
}

// SearchWilayas handles GET /api/delivery/search?q=
func (h *DeliveryHandler) SearchWilayas(w http.ResponseWriter, r *http.Request) {
	results, err := h.deliveryUC.Search(r.URL.Query().Get("q"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Search query is required")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", results)
}
