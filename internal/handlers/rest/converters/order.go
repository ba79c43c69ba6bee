package converters

import (
	"laundry/internal/entities"
	"laundry/internal/generated/dto"
)

func OrderToDTO(order *entities.Order) dto.Order {
	return dto.Order{
		Id:                      order.ID,
		UserId:                  order.UserID,
		Name:                    order.Name,
		Phone:                   order.Phone,
		Address:                 order.Address,
		Si:                      order.Si,
		Gu:                      order.Gu,
		Dong:                    order.Dong,
		Latitude:                order.Latitude,
		Longitude:               order.Longitude,
		IsServiceable:           order.IsServiceable,
		Paid:                    order.Paid,
		PaymentId:               order.PaymentID,
		PaymentAmount:           order.PaymentAmount,
		PaymentMethod:           order.PaymentMethod,
		Status:                  dto.OrderStatus(order.Status),
		ProcessingStartedAt:     order.ProcessingStartedAt,
		CompletedAt:             order.CompletedAt,
		DeliveredAt:             order.DeliveredAt,
		CancelledAt:             order.CancelledAt,
		CancelReason:            order.CancelReason,
		EstimatedCompletionTime: order.EstimatedCompletionTime,
		PickupPhotoUrl:          order.PickupPhotoURL,
		DeliveryPhotoUrl:        order.DeliveryPhotoURL,
		CreatedAt:               order.CreatedAt,
		UpdatedAt:               order.UpdatedAt,
	}
}

func TrackingToDTO(tracking *entities.OrderTracking) dto.OrderTracking {
	result := dto.OrderTracking{
		Order: OrderToDTO(&tracking.Order),
		StatusInfo: dto.StatusInfo{
			Label:       tracking.Info.Label,
			Description: tracking.Info.Description,
			Icon:        tracking.Info.Icon,
			Completed:   tracking.Info.Completed,
		},
		Progress: tracking.Progress,
		Actions: dto.AllowedActions{
			CanCancel:        tracking.Actions.CanCancel,
			CanViewPhotos:    tracking.Actions.CanViewPhotos,
			CanTrackProgress: tracking.Actions.CanTrackProgress,
		},
	}
	if tracking.NextStep != nil {
		result.NextStep = &dto.NextStep{
			Status:        dto.OrderStatus(tracking.NextStep.Status),
			Label:         tracking.NextStep.Label,
			EstimatedTime: tracking.NextStep.EstimatedTime,
		}
	}
	return result
}

func StatusLogsToDTO(logs []entities.OrderStatusLog) dto.OrderStatusLogsResponse {
	result := dto.OrderStatusLogsResponse{Logs: make([]dto.OrderStatusLog, 0, len(logs))}
	for _, log := range logs {
		item := dto.OrderStatusLog{
			Id:        log.ID,
			OrderId:   log.OrderID,
			ToStatus:  dto.OrderStatus(log.ToStatus),
			ChangedBy: log.ChangedBy,
			Notes:     log.Notes,
			CreatedAt: log.CreatedAt,
		}
		if log.FromStatus != nil {
			from := dto.OrderStatus(*log.FromStatus)
			item.FromStatus = &from
		}
		result.Logs = append(result.Logs, item)
	}
	return result
}

func ValidStatusesDTO() []dto.OrderStatus {
	statuses := entities.ValidStatuses()
	result := make([]dto.OrderStatus, 0, len(statuses))
	for _, status := range statuses {
		result = append(result, dto.OrderStatus(status))
	}
	return result
}
