package ping_get

import (
	"net/http"

	"depot/internal/handlers/rest/dto"
	"depot/pkg/logger"
)

const pong = "pong"

type Handler struct {
	log logger.Logger
}

func New(log logger.Logger) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "ping_get")),
	}
}

// ServeHTTP GET /ping, проверка живости без обращения к базе и Kafka.
func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := pong

	if err := dto.WriteJSON(w, http.StatusOK, dto.PingResponse{Message: &message}); err != nil {
		h.log.Error("encode ping response", logger.NewField("error", err))
	}
}
