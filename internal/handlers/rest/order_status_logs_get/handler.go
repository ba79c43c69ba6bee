package order_status_logs_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"laundry/internal/handlers/rest/converters"
	"laundry/internal/pkg/httpjson"
	"laundry/internal/service/order"
	"laundry/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || orderID <= 0 {
		httpjson.Error(w, h.log, http.StatusBadRequest, "Invalid order id")
		return
	}

	logs, err := h.service.GetStatusLogs(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			httpjson.Error(w, h.log, http.StatusBadRequest, "Invalid order id")
		case errors.Is(err, order.ErrOrderNotFound):
			httpjson.Error(w, h.log, http.StatusNotFound, "Order not found")
		default:
			h.log.With(
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			).Error("get order status logs")
			httpjson.Error(w, h.log, http.StatusInternalServerError, "Failed to get order status logs")
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusOK, converters.StatusLogsToDTO(logs))
}
