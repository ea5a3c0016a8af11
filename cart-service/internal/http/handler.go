package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/Youhab1/cloud-finalproject/cart-service/internal/domain"
	"github.com/Youhab1/cloud-finalproject/cart-service/internal/service"
	"github.com/Youhab1/cloud-finalproject/pkg/logger"
	"github.com/Youhab1/cloud-finalproject/pkg/web"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgItemAdded        = "Item added to cart successfully."
	msgItemRemoved      = "Item removed from cart successfully."
	msgItemNotFound     = "Item not found in the cart."
	msgCheckoutDone     = "Checkout processed successfully."
	msgInvalidAdd       = "Invalid request. Please provide productId, productName, and price."
	msgInvalidRemove    = "Invalid request. Please provide productId."
	msgEmptyCart        = "No items in the cart."
	msgCatalogFetchFail = "An error occurred while fetching products."
)

type CartService interface {
	AddItem(ctx context.Context, item domain.CartItem) error
	RemoveItem(ctx context.Context, productID domain.ProductID) (domain.RemoveOutcome, error)
	ListItems(ctx context.Context) domain.CartSummary
	Checkout(ctx context.Context, items []domain.CartItem) (domain.Order, error)
	Catalog(ctx context.Context) ([]domain.CatalogEntry, error)
}

type CartHandler struct {
	service CartService
}

func NewCartHandler(service CartService) *CartHandler {
	return &CartHandler{service: service}
}

func (h *CartHandler) Routes(r chi.Router) {
	r.Get("/inventory/products", h.ListCatalog)
	r.Route("/cart", func(r chi.Router) {
		r.Post("/addtocart", h.AddItem)
		r.Post("/removefromcart", h.RemoveItem)
		r.Get("/cartlist", h.ListItems)
		r.Post("/checkout", h.Checkout)
	})
}

type removeItemRequest struct {
	ProductID domain.ProductID `json:"productId"`
}

type checkoutRequest struct {
	CartItems []domain.CartItem `json:"cartItems"`
}

type checkoutResponse struct {
	Message string       `json:"message"`
	Order   domain.Order `json:"order"`
}

func (h *CartHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Catalog(r.Context())
	if err != nil {
		web.RespondError(w, http.StatusInternalServerError, "store_unavailable", msgCatalogFetchFail)
		return
	}
	web.RespondJSON(w, http.StatusOK, entries)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var item domain.CartItem
	if err := web.DecodeJSON(w, r, &item); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid_request", msgInvalidAdd)
		return
	}

	if err := h.service.AddItem(r.Context(), item); err != nil {
		h.handleServiceError(w, r, err, msgInvalidAdd)
		return
	}
	web.RespondMessage(w, http.StatusOK, msgItemAdded)
}

// RemoveItem answers 200 whether or not the item was in the cart.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req removeItemRequest
	if err := web.DecodeJSON(w, r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid_request", msgInvalidRemove)
		return
	}

	outcome, err := h.service.RemoveItem(r.Context(), req.ProductID)
	if err != nil {
		h.handleServiceError(w, r, err, msgInvalidRemove)
		return
	}

	if outcome == domain.RemoveRemoved {
		web.RespondMessage(w, http.StatusOK, msgItemRemoved)
		return
	}
	web.RespondMessage(w, http.StatusOK, msgItemNotFound)
}

func (h *CartHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	web.RespondJSON(w, http.StatusOK, h.service.ListItems(r.Context()))
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := web.DecodeJSON(w, r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	order, err := h.service.Checkout(r.Context(), req.CartItems)
	if err != nil {
		h.handleServiceError(w, r, err, msgEmptyCart)
		return
	}
	web.RespondJSON(w, http.StatusOK, checkoutResponse{Message: msgCheckoutDone, Order: order})
}

func (h *CartHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, badRequestMsg string) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		web.RespondError(w, http.StatusBadRequest, "invalid_request", badRequestMsg)
	case errors.Is(err, service.ErrEmptyCart):
		web.RespondError(w, http.StatusBadRequest, "empty_cart", msgEmptyCart)
	default:
		logger.FromContext(r.Context()).Error("cart request failed", zap.Error(err))
		web.RespondError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}
