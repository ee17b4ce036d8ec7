package v1

import (
	"net/http"

	"titoubarz-backend/internal/delivery/http/middleware"
	"titoubarz-backend/internal/domain"
	"titoubarz-backend/internal/usecase"
	"titoubarz-backend/pkg/utils"

	"github.com/goccy/go-json"
)

type ContactHandler struct {
	contactUC *usecase.ContactUsecase
}

func NewContactHandler(uc *usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{contactUC: uc}
}

// SubmitContact handles POST /api/contact
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
		Source  string `json:"source"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		utils.WriteError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	contact := &domain.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Source:    req.Source,
		IPAddress: middleware.GetClientIP(r),
		UserAgent: r.UserAgent(),
	}
	if err := h.contactUC.Submit(r.Context(), contact); err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error submitting contact message", err.Error())
		return
	}

	utils.WriteSuccess(w, http.StatusCreated,
		"Thank you for your message! We will get back to you soon.",
		map[string]interface{}{"id": contact.ID})
}
