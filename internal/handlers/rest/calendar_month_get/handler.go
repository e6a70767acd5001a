package calendar_month_get

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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
	handlerLog := log.With(logger.NewField("handler", "calendar_month_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP GET /calendar/{year}/{month}
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.encode(w, http.StatusBadRequest, dto.Error{Error: "year must be a number"})
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		h.encode(w, http.StatusBadRequest, dto.Error{Error: "month must be a number"})
		return
	}

	view, err := h.service.EventsForMonth(r.Context(), year, time.Month(month))
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidInput):
			h.encode(w, http.StatusBadRequest, dto.Error{Error: err.Error()})
		case errors.Is(err, entities.ErrUpstreamUnavailable):
			h.log.Warn("calendar source unavailable", logger.NewField("error", err))
			h.encode(w, http.StatusServiceUnavailable, []dto.CalendarEvent{})
		default:
			h.log.Error("calendar month", logger.NewField("error", err))
			h.encode(w, http.StatusInternalServerError, dto.Error{Error: "internal error"})
		}
		return
	}

	h.encode(w, http.StatusOK, dto.FromMonthView(view))
}

func (h *Handler) encode(w http.ResponseWriter, status int, body any) {
	if err := dto.WriteJSON(w, status, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
