package order_status_put

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"laundry/internal/entities"
	"laundry/internal/generated/dto"
	"laundry/internal/handlers/rest/converters"
	"laundry/internal/pkg/httpjson"
	"laundry/internal/pkg/identity"
	"laundry/internal/service/order"
	"laundry/pkg/logger"
)

const maxBodyBytes = 64 << 10

type Handler struct {
	log      handlerLogger
	service  Service
	validate *validator.Validate
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
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

	var req dto.UpdateOrderStatusJSONRequestBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.invalidStatus(w)
		return
	}

	// Проверяется только наличие status, notes и photos принимаются как есть.
	if err := h.validate.Struct(req); err != nil {
		h.invalidStatus(w)
		return
	}

	target := entities.OrderStatusType(req.Status)
	if !target.IsValid() {
		h.invalidStatus(w)
		return
	}

	update := entities.OrderStatusUpdate{
		OrderID:   orderID,
		Target:    target,
		Notes:     req.Notes,
		ChangedBy: caller,
	}
	if req.Photos != nil {
		update.Photos = entities.OrderPhotos{
			Pickup:   req.Photos.Pickup,
			Delivery: req.Photos.Delivery,
		}
	}

	updated, err := h.service.UpdateStatus(r.Context(), update)
	if err != nil {
		h.writeServiceError(w, orderID, err)
		return
	}

	httpjson.Write(w, h.log, http.StatusOK, dto.OrderStatusUpdateResponse{
		Success: true,
		Order:   converters.OrderToDTO(updated),
		Message: fmt.Sprintf("주문 상태가 '%s'(으)로 변경되었습니다.", updated.Status.Info().Label),
	})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, orderID int64, err error) {
	var transitionErr *order.TransitionError

	switch {
	case errors.As(err, &transitionErr):
		httpjson.Write(w, h.log, http.StatusBadRequest, dto.InvalidTransitionResponse{
			Error:         "Invalid status transition",
			CurrentStatus: dto.OrderStatus(transitionErr.Current),
			TargetStatus:  dto.OrderStatus(transitionErr.Target),
		})
	case errors.Is(err, order.ErrInvalidStatus):
		h.invalidStatus(w)
	case errors.Is(err, order.ErrInvalidOrderID):
		httpjson.Error(w, h.log, http.StatusBadRequest, "Invalid order id")
	case errors.Is(err, order.ErrOrderNotFound):
		httpjson.Error(w, h.log, http.StatusNotFound, "Order not found")
	case errors.Is(err, order.ErrStatusConflict):
		httpjson.Error(w, h.log, http.StatusConflict, "Order status was changed by another request")
	default:
		h.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		).Error("update order status")
		httpjson.ErrorWithDetails(w, h.log, http.StatusInternalServerError, "Failed to update order status", err.Error())
	}
}

func (h *Handler) invalidStatus(w http.ResponseWriter) {
	httpjson.Write(w, h.log, http.StatusBadRequest, dto.InvalidStatusResponse{
		Error:         "Invalid status",
		ValidStatuses: converters.ValidStatusesDTO(),
	})
}
