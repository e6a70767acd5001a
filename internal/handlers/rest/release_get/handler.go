package release_get

import (
	"errors"
	"net/http"
	"time"

	"depot/internal/entities"
	"depot/internal/handlers/rest/dto"
	"depot/internal/service/release"
	"depot/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
	loc     *time.Location
}

func New(log handlerLogger, service Service, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	handlerLog := log.With(logger.NewField("handler", "release_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
		loc:     loc,
	}
}

// ServeHTTP GET /containers/{id}/release
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	found, err := h.service.GetRelease(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidInput):
			h.encode(w, http.StatusBadRequest, dto.Error{Error: err.Error()})
		case errors.Is(err, release.ErrReleaseNotFound):
			h.encode(w, http.StatusNotFound, dto.Error{Error: "release not found"})
		case errors.Is(err, entities.ErrUpstreamUnavailable):
			h.log.Warn("release lookup, upstream unavailable", logger.NewField("error", err))
			h.encode(w, http.StatusServiceUnavailable, dto.Error{Error: "try again later"})
		default:
			h.log.Error("release lookup", logger.NewField("error", err))
			h.encode(w, http.StatusInternalServerError, dto.Error{Error: "internal error"})
		}
		return
	}

	h.encode(w, http.StatusOK, dto.FromRelease(found, h.loc))
}

func (h *Handler) encode(w http.ResponseWriter, status int, body any) {
	if err := dto.WriteJSON(w, status, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
