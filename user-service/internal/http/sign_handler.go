package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/Youhab1/cloud-finalproject/pkg/web"
	"github.com/Youhab1/cloud-finalproject/user-service/internal/domain"
	"github.com/Youhab1/cloud-finalproject/user-service/internal/service"
	"github.com/go-chi/chi/v5"
)

type SignService interface {
	Signup(ctx context.Context, req domain.SignupRequest) error
	Signin(ctx context.Context, req domain.SigninRequest) error
}

// ValidationErrorResponse lists signup problems separated by newlines.
type ValidationErrorResponse struct {
	Errors string `json:"errors"`
}

type SignHandler struct {
	service SignService
}

func NewSignHandler(service SignService) *SignHandler {
	return &SignHandler{service: service}
}

func (h *SignHandler) Routes(r chi.Router) {
	r.Route("/sign", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/signin", h.Signin)
	})
}

func (h *SignHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if err := web.DecodeJSON(w, r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	err := h.service.Signup(r.Context(), req)
	var verr *service.ValidationError
	switch {
	case err == nil:
		web.RespondMessage(w, http.StatusOK, "User signed up successfully")
	case errors.As(err, &verr):
		web.RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: verr.Error()})
	default:
		web.RespondError(w, http.StatusInternalServerError, "internal_error", "Failed to sign up user")
	}
}

func (h *SignHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req domain.SigninRequest
	if err := web.DecodeJSON(w, r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	err := h.service.Signin(r.Context(), req)
	switch {
	case err == nil:
		web.RespondMessage(w, http.StatusOK, "User signed in successfully")
	case errors.Is(err, service.ErrInvalidCredentials):
		web.RespondMessage(w, http.StatusUnauthorized, "Invalid username or password")
	default:
		web.RespondError(w, http.StatusInternalServerError, "internal_error", "Failed to sign in user")
	}
}
