package calendar_day_get

import (
	"errors"
	"net/http"

	"depot/internal/entities"
	"depot/internal/handlers/rest/dto"
	"depot/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "calendar_day_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP GET /calendar/day/{date}
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	date, err := entities.ParseCalendarDate(mux.Vars(r)["date"])
	if err != nil {
		h.encode(w, http.StatusBadRequest, dto.Error{Error: "date must be YYYY-MM-DD"})
		return
	}

	events, err := h.service.EventsForDate(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidInput):
			h.encode(w, http.StatusBadRequest, dto.Error{Error: err.Error()})
		case errors.Is(err, entities.ErrUpstreamUnavailable):
			h.log.Warn("calendar source unavailable", logger.NewField("error", err))
			h.encode(w, http.StatusServiceUnavailable, []dto.CalendarEvent{})
		default:
			h.log.Error("calendar day", logger.NewField("error", err))
			h.encode(w, http.StatusInternalServerError, dto.Error{Error: "internal error"})
		}
		return
	}

	h.encode(w, http.StatusOK, dto.FromCalendarEvents(events))
}

func (h *Handler) encode(w http.ResponseWriter, status int, body any) {
	if err := dto.WriteJSON(w, status, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
