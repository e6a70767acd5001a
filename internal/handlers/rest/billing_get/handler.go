package billing_get

import (
	"errors"
	"net/http"
	"time"

	"depot/internal/entities"
	"depot/internal/handlers/rest/dto"
	"depot/internal/service/billing"
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
	handlerLog := log.With(logger.NewField("handler", "billing_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
		loc:     loc,
	}
}

// ServeHTTP GET /containers/{id}/billing?as_of=RFC3339
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var asOf *time.Time
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.encode(w, http.StatusBadRequest, dto.Error{Error: "as_of must be RFC3339"})
			return
		}
		asOf = &parsed
	}

	result, err := h.service.ContainerBilling(r.Context(), mux.Vars(r)["id"], asOf)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidInput):
			h.encode(w, http.StatusBadRequest, dto.Error{Error: err.Error()})
		case errors.Is(err, billing.ErrContainerNotFound):
			h.encode(w, http.StatusNotFound, dto.Error{Error: "container not found"})
		case errors.Is(err, billing.ErrNoBillingTerms):
			h.encode(w, http.StatusUnprocessableEntity, dto.Error{Error: err.Error()})
		case errors.Is(err, entities.ErrAmountOutOfRange):
			h.log.Warn("billing, accrued fee out of range", logger.NewField("error", err))
			h.encode(w, http.StatusUnprocessableEntity, dto.Error{Error: "accrued fee out of range"})
		case errors.Is(err, entities.ErrUpstreamUnavailable):
			h.log.Warn("billing, upstream unavailable", logger.NewField("error", err))
			h.encode(w, http.StatusServiceUnavailable, dto.Error{Error: "try again later"})
		default:
			h.log.Error("billing", logger.NewField("error", err))
			h.encode(w, http.StatusInternalServerError, dto.Error{Error: "internal error"})
		}
		return
	}

	h.encode(w, http.StatusOK, dto.FromContainerBilling(result, h.loc))
}

func (h *Handler) encode(w http.ResponseWriter, status int, body any) {
	if err := dto.WriteJSON(w, status, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
