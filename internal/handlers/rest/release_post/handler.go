package release_post

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

// New loc часовой пояс календаря, в нём читаются и выводятся даты без времени.
func New(log handlerLogger, service Service, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	handlerLog := log.With(logger.NewField("handler", "release_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
		loc:     loc,
	}
}

// ServeHTTP POST /containers/release. Без "edit": true повторный выпуск того же
// контейнера отвечает 409, с ним запрос редактирует существующий выпуск.
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

	status := http.StatusCreated
	var result *entities.Release
	if request.Edit {
		status = http.StatusOK
		result, err = h.service.EditRelease(r.Context(), releaseModify)
	} else {
		result, err = h.service.CreateRelease(r.Context(), releaseModify)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.log.Info("release saved",
		logger.NewField("container", result.ContainerNumber),
		logger.NewField("edit", request.Edit),
	)
	h.encode(w, status, dto.FromRelease(result, h.loc))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrInvalidInput):
		h.encode(w, http.StatusBadRequest, dto.Error{Error: err.Error()})
	case errors.Is(err, release.ErrReleaseAlreadyExists):
		h.encode(w, http.StatusConflict, dto.Error{Error: dto.ReleaseConflictMessage})
	case errors.Is(err, release.ErrContainerNotFound),
		errors.Is(err, release.ErrReleaseNotFound):
		h.encode(w, http.StatusNotFound, dto.Error{Error: err.Error()})
	case errors.Is(err, entities.ErrUpstreamUnavailable):
		h.log.Warn("release not saved, upstream unavailable", logger.NewField("error", err))
		h.encode(w, http.StatusServiceUnavailable, dto.Error{Error: "release was not saved, try again later"})
	default:
		h.log.Error("release not saved", logger.NewField("error", err))
		h.encode(w, http.StatusInternalServerError, dto.Error{Error: "release was not saved"})
	}
}

func (h *Handler) encode(w http.ResponseWriter, status int, body any) {
	if err := dto.WriteJSON(w, status, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
