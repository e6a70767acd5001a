package release_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"depot/internal/entities"
	"depot/internal/handlers/rest/dto"
	"depot/internal/service/release"
	"depot/pkg/logger"
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
	handlerLog := log.With(logger.NewField("handler", "release_patch"))

	return &Handler{
		log:     handlerLog,
		service: service,
		loc:     loc,
	}
}

// ServeHTTP PATCH /containers/release
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.ReleaseRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.encode(w, http.StatusBadRequest, dto.Error{Error: "invalid JSON body"})
		return
	}

	releaseModify, err := request.ToReleaseModify(h.loc)
	if err != nil {
		h.encode(w, http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	edited, err := h.service.EditRelease(r.Context(), releaseModify)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidInput):
			h.encode(w, http.StatusBadRequest, dto.Error{Error: err.Error()})
		case errors.Is(err, release.ErrReleaseNotFound):
			h.encode(w, http.StatusNotFound, dto.Error{Error: err.Error()})
		case errors.Is(err, entities.ErrUpstreamUnavailable):
			h.log.Warn("release not edited, upstream unavailable", logger.NewField("error", err))
			h.encode(w, http.StatusServiceUnavailable, dto.Error{Error: "release was not saved, try again later"})
		default:
			h.log.Error("release not edited", logger.NewField("error", err))
			h.encode(w, http.StatusInternalServerError, dto.Error{Error: "release was not saved"})
		}
		return
	}

	h.log.Info("release edited", logger.NewField("container", edited.ContainerNumber))
	h.encode(w, http.StatusOK, dto.FromRelease(edited, h.loc))
}

func (h *Handler) encode(w http.ResponseWriter, status int, body any) {
	if err := dto.WriteJSON(w, status, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
