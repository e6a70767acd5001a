package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"depot/pkg/logger"
)

const pingTimeout = time.Second

type Handler struct {
	log            handlerLogger
	isShuttingDown *atomic.Bool
	database       Pinger
}

func New(log handlerLogger, isShuttingDown *atomic.Bool, database Pinger) *Handler {
	return &Handler{
		log:            log.With(logger.NewField("handler", "healthcheck_head")),
		isShuttingDown: isShuttingDown,
		database:       database,
	}
}

// ServeHTTP HEAD /healthcheck: 204, либо 503 при остановке или недоступной базе.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.database.Ping(ctx); err != nil {
		h.log.Warn("database ping failed", logger.NewField("error", err))
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
