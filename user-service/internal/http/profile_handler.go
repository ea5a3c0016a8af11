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

type ProfileService interface {
	Profile(ctx context.Context, username string) (domain.UserProfile, bool, error)
}

type ProfileHandler struct {
	service ProfileService
}

func NewProfileHandler(service ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) Routes(r chi.Router) {
	r.Get("/userdata", h.UserData)
}

func (h *ProfileHandler) UserData(w http.ResponseWriter, r *http.Request) {
	profile, found, err := h.service.Profile(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		if errors.Is(err, service.ErrMissingParameter) {
			web.RespondError(w, http.StatusBadRequest, "missing_parameter", "Username is required")
			return
		}
		web.RespondError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	if !found {
		web.RespondMessage(w, http.StatusNotFound, "User not found")
		return
	}
	web.RespondJSON(w, http.StatusOK, profile)
}
