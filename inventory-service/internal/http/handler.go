package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/Youhab1/cloud-finalproject/inventory-service/internal/domain"
	"github.com/Youhab1/cloud-finalproject/inventory-service/internal/service"
	"github.com/Youhab1/cloud-finalproject/pkg/web"
	"github.com/go-chi/chi/v5"
)

type ProductService interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error)
	GetProductDetails(ctx context.Context, rawID string) (domain.ProductLookup, error)
}

type InventoryHandler struct {
	service ProductService
}

func NewInventoryHandler(service ProductService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

func (h *InventoryHandler) Routes(r chi.Router) {
	r.Route("/inventory", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/search", h.SearchProducts)
		r.Get("/details/", h.GetProductDetails)
		r.Get("/details/{id}", h.GetProductDetails)
	})
}

func (h *InventoryHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter, err := service.NewProductFilter(q.Get("category"), q.Get("type"), q.Get("minPrice"), q.Get("maxPrice"))
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	web.RespondJSON(w, http.StatusOK, products)
}

func (h *InventoryHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.SearchProducts(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		if errors.Is(err, service.ErrMissingParameter) {
			web.RespondError(w, http.StatusBadRequest, "missing_parameter", "Keyword is required")
			return
		}
		handleServiceError(w, err)
		return
	}
	web.RespondJSON(w, http.StatusOK, products)
}

// GetProductDetails answers null with 200 when no product has the id.
func (h *InventoryHandler) GetProductDetails(w http.ResponseWriter, r *http.Request) {
	lookup, err := h.service.GetProductDetails(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrMissingParameter) {
			web.RespondError(w, http.StatusBadRequest, "missing_parameter", "Product ID is required")
			return
		}
		handleServiceError(w, err)
		return
	}

	if !lookup.Found {
		web.RespondJSON(w, http.StatusOK, nil)
		return
	}
	web.RespondJSON(w, http.StatusOK, lookup.Product)
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		web.RespondError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, service.ErrMissingParameter):
		web.RespondError(w, http.StatusBadRequest, "missing_parameter", err.Error())
	default:
		web.RespondError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}
