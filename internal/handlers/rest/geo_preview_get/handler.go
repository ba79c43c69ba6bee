package geo_preview_get

import (
	"errors"
	"net/http"
	"strings"

	"laundry/internal/generated/dto"
	"laundry/internal/pkg/httpjson"
	"laundry/internal/service/geo"
	"laundry/pkg/logger"
)

const (
	msgAddressRequired = "주소를 입력해주세요."
	msgAddressNotFound = "주소를 찾을 수 없습니다. 정확한 주소를 입력해주세요."
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
	params := dto.PreviewAddressParams{Address: r.URL.Query().Get("address")}
	if strings.TrimSpace(params.Address) == "" {
		httpjson.Error(w, h.log, http.StatusBadRequest, msgAddressRequired)
		return
	}

	preview, err := h.service.PreviewAddress(r.Context(), params.Address)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidInput) {
			httpjson.Error(w, h.log, http.StatusBadRequest, msgAddressRequired)
			return
		}

		// Клиенту уходит одно сообщение, детали только в лог.
		entry := h.log.With(
			logger.NewField("address", params.Address),
			logger.NewField("error", err),
		)
		if errors.Is(err, geo.ErrAddressNotFound) {
			entry.Info("address not found")
		} else {
			entry.Warn("geocoding failed")
		}
		httpjson.Error(w, h.log, http.StatusBadRequest, msgAddressNotFound)
		return
	}

	httpjson.Write(w, h.log, http.StatusOK, dto.AddressPreview{
		IsServiceable: preview.IsServiceable,
		Si:            preview.Region.Si,
		Gu:            preview.Region.Gu,
		Dong:          preview.Region.Dong,
		Latitude:      preview.Latitude,
		Longitude:     preview.Longitude,
	})
}
