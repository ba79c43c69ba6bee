package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"laundry/pkg/logger"
)

const pingTimeout = 2 * time.Second

type Handler struct {
	log            handlerLogger
	isShuttingDown *atomic.Bool
	db             Pinger
}

func New(log handlerLogger, isShuttingDown *atomic.Bool, db Pinger) *Handler {
	return &Handler{
		log:            log.With(),
		isShuttingDown: isShuttingDown,
		db:             db,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.With(logger.NewField("error", err)).Warn("database ping failed")
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
