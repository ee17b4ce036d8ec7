package v1

import (
	"errors"
	"net/http"

	"titoubarz-backend/internal/domain"
	"titoubarz-backend/internal/usecase"
	"titoubarz-backend/pkg/utils"

	"github.com/goccy/go-json"
)

type AdminContactHandler struct {
	contactUC *usecase.ContactUsecase
}

func NewAdminContactHandler(uc *usecase.ContactUsecase) *AdminContactHandler {
	return &AdminContactHandler{contactUC: uc}
}

// GetContacts handles GET /api/contact
func (h *AdminContactHandler) GetContacts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ContactFilter{
		Page:      utils.ParseInt(q.Get("page"), 1),
		Limit:     utils.ParseInt(q.Get("limit"), 20),
		Status:    q.Get("status"),
		Priority:  q.Get("priority"),
		Search:    q.Get("search"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}

	contacts, total, err := h.contactUC.GetContacts(r.Context(), filter)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching contact messages", err.Error())
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "", map[string]interface{}{
		"contacts":   contacts,
		"pagination": buildPagination(filter.Page, filter.Limit, total),
	})
}

// GetContact handles GET /api/contact/{id}
func (h *AdminContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contactUC.GetContact(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Contact message not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching contact message", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", contact)
}

// UpdateContact handles PUT /api/contact/{id}
func (h *AdminContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status   string `json:"status"`
		Priority string `json:"priority"`
		Note     string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contact, err := h.contactUC.UpdateContact(r.Context(), r.PathValue("id"), usecase.ContactPatch{
		Status:   req.Status,
		Priority: req.Priority,
		Note:     req.Note,
	})
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Contact message not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error updating contact message", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Contact message updated successfully", contact)
}

// MarkAsRead handles PATCH /api/contact/{id}/read
func (h *AdminContactHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contactUC.MarkAsRead(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Contact message not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error updating contact message", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Contact message marked as read", contact)
}

// DeleteContact handles DELETE /api/contact/{id}
func (h *AdminContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := h.contactUC.DeleteContact(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Contact message not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error deleting contact message", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Contact message deleted successfully", nil)
}

// GetStats handles GET /api/contact/stats
func (h *AdminContactHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.contactUC.GetStats(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching contact stats", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", stats)
}
