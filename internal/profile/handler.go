// AngelaMos | 2026
// handler.go

package profile

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartstyle/api/internal/core"
	"github.com/smartstyle/api/internal/middleware"
)

const maxProfileBody = 1 << 20 // 1 MiB

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/profile/{userID}", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.Get)
		r.Put("/", h.Replace)
		r.Patch("/{section}", h.PatchSection)
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())
	userID := chi.URLParam(r, "userID")

	profile, err := h.service.Get(r.Context(), identity, userID)
	if err != nil {
		writeProfileError(w, err)
		return
	}

	core.OK(w, profile)
}

func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())
	userID := chi.URLParam(r, "userID")

	var profile Profile
	if err := json.NewDecoder(
		io.LimitReader(r.Body, maxProfileBody),
	).Decode(&profile); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	profile.UserID = userID

	if err := h.service.Replace(r.Context(), identity, &profile); err != nil {
		writeProfileError(w, err)
		return
	}

	core.OK(w, profile)
}

func (h *Handler) PatchSection(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())
	userID := chi.URLParam(r, "userID")
	section := chi.URLParam(r, "section")

	data, err := io.ReadAll(io.LimitReader(r.Body, maxProfileBody))
	if err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if !json.Valid(data) {
		core.BadRequest(w, "invalid request body")
		return
	}

	err = h.service.PatchSection(r.Context(), identity, userID, section, data)
	if err != nil {
		writeProfileError(w, err)
		return
	}

	profile, err := h.service.Get(r.Context(), identity, userID)
	if err != nil {
		writeProfileError(w, err)
		return
	}

	core.OK(w, profile)
}

func writeProfileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "cannot access another user's profile")
	case errors.Is(err, core.ErrUnauthorized):
		core.Unauthorized(w, "")
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, err.Error())
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "profile")
	default:
		core.InternalServerError(w, err)
	}
}
