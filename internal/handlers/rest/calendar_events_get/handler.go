package calendar_events_get

import (
	"errors"
	"net/http"
	"strings"

	"depot/internal/entities"
	"depot/internal/handlers/rest/dto"
	"depot/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "calendar_events_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP GET /calendar-events?customer=&type=
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter entities.CalendarEventFilter
	if customer := strings.TrimSpace(query.Get("customer")); customer != "" {
		filter.CustomerName = &customer
	}
	if eventType := strings.TrimSpace(query.Get("type")); eventType != "" {
		t := entities.EventType(eventType)
		filter.EventType = &t
	}

	events, err := h.service.ListEvents(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := dto.WriteJSON(w, http.StatusOK, dto.FromCalendarEvents(events)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var writeErr error
	switch {
	case errors.Is(err, entities.ErrInvalidInput):
		writeErr = dto.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entities.ErrUpstreamUnavailable):
		h.log.Warn("calendar source unavailable", logger.NewField("error", err))
		writeErr = dto.WriteJSON(w, http.StatusServiceUnavailable, []dto.CalendarEvent{})
	default:
		h.log.Error("list calendar events", logger.NewField("error", err))
		writeErr = dto.WriteError(w, http.StatusInternalServerError, "internal error")
	}

	if writeErr != nil {
		h.log.With(
			logger.NewField("error", writeErr),
		).Error("encode JSON response")
	}
}
