package v1

import (
	"errors"
	"net/http"

	"titoubarz-backend/internal/domain"
	"titoubarz-backend/internal/usecase"
	"titoubarz-backend/pkg/utils"

	"github.com/goccy/go-json"
)

// AdminCatalogHandler covers the write side of the catalog. All routes sit
// behind the admin middleware.
type AdminCatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewAdminCatalogHandler(uc *usecase.CatalogUsecase) *AdminCatalogHandler {
	return &AdminCatalogHandler{catalogUC: uc}
}

type productRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Price       float64               `json:"price"`
	Category    string                `json:"category"`
	Featured    bool                  `json:"featured"`
	Stock       int                   `json:"stock"`
	Images      []domain.ProductImage `json:"images"`
}

func (req *productRequest) validate() string {
	if req.Name == "" {
		return "Product name is required"
	}
	if req.Price <= 0 {
		return "Product price must be greater than zero"
	}
	if req.Category == "" {
		return "Product category is required"
	}
	return ""
}

// CreateProduct handles POST /api/products
func (h *AdminCatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		utils.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	product := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Featured:    req.Featured,
		Stock:       req.Stock,
		Images:      req.Images,
	}
	if product.Images == nil {
		product.Images = []domain.ProductImage{}
	}

	if err := h.catalogUC.CreateProduct(r.Context(), product); err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error creating product", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, "Product created successfully", product)
}

// UpdateProduct handles PUT /api/products/{id}
func (h *AdminCatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := h.catalogUC.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error updating product", err.Error())
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		utils.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Price = req.Price
	existing.Category = req.Category
	existing.Featured = req.Featured
	existing.Stock = req.Stock
	if req.Images != nil {
		existing.Images = req.Images
	}

	if err := h.catalogUC.UpdateProduct(r.Context(), existing); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error updating product", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Product updated successfully", existing)
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *AdminCatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUC.DeleteProduct(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error deleting product", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Product deleted successfully", nil)
}
