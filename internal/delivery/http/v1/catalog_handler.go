package v1

import (
	"errors"
	"net/http"

	"titoubarz-backend/internal/domain"
	"titoubarz-backend/internal/usecase"
	"titoubarz-backend/pkg/utils"
)

type CatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc}
}

// buildPagination derives the page envelope from the request window and the
// total row count.
func buildPagination(page, limit int, total int64) domain.Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return domain.Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// GetProducts handles GET /api/products
func (h *CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := utils.ParseInt(q.Get("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := utils.ParseInt(q.Get("limit"), 12)

	filter := domain.ProductFilter{
		Category:  q.Get("category"),
		Search:    q.Get("search"),
		MinPrice:  utils.ParseFloat(q.Get("minPrice"), 0),
		MaxPrice:  utils.ParseFloat(q.Get("maxPrice"), 0),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}
	if q.Get("featured") == "true" {
		featured := true
		filter.Featured = &featured
	}

	products, total, err := h.catalogUC.GetProducts(r.Context(), filter)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching products", err.Error())
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "", map[string]interface{}{
		"products":   products,
		"pagination": buildPagination(page, limit, total),
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogUC.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching product", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", product)
}

// GetFeatured handles GET /api/products/featured
func (h *CatalogHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUC.GetFeatured(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching featured products", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", products)
}

// GetCategories handles GET /api/products/categories
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogUC.GetCategories(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching categories", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", categories)
}

// GetByCategory handles GET /api/products/category/{category}
func (h *CatalogHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUC.GetByCategory(r.Context(), r.PathValue("category"))
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching products by category", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", products)
}

// SearchProducts handles GET /api/products/search?q=
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		utils.WriteError(w, http.StatusBadRequest, "Search query is required")
		return
	}

	products, err := h.catalogUC.Search(r.Context(), query)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error searching products", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", products)
}
