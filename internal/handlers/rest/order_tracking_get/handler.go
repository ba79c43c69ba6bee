package order_tracking_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"laundry/internal/handlers/rest/converters"
	"laundry/internal/pkg/httpjson"
	"laundry/internal/pkg/identity"
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

	caller, ok := identity.CallerFrom(r.Context())
	if !ok {
		httpjson.Error(w, h.log, http.StatusUnauthorized, "로그인이 필요합니다.")
		return
	}

	tracking, err := h.service.GetTracking(r.Context(), caller, orderID)
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
			).Error("get order tracking")
			httpjson.Error(w, h.log, http.StatusInternalServerError, "Failed to get order tracking")
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusOK, converters.TrackingToDTO(tracking))
}
