package order

import (
	"laundry/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:                      o.ID,
		UserID:                  o.UserID,
		Name:                    o.Name,
		Phone:                   o.Phone,
		Address:                 o.Address,
		Si:                      o.Si,
		Gu:                      o.Gu,
		Dong:                    o.Dong,
		Latitude:                o.Latitude,
		Longitude:               o.Longitude,
		IsServiceable:           o.IsServiceable,
		Paid:                    o.Paid,
		PaymentID:               o.PaymentID,
		PaymentAmount:           o.PaymentAmount,
		PaymentMethod:           o.PaymentMethod,
		Status:                  entities.OrderStatusType(o.Status),
		ProcessingStartedAt:     o.ProcessingStartedAt,
		CompletedAt:             o.CompletedAt,
		DeliveredAt:             o.DeliveredAt,
		CancelledAt:             o.CancelledAt,
		CancelReason:            o.CancelReason,
		EstimatedCompletionTime: o.EstimatedCompletionTime,
		PickupPhotoURL:          o.PickupPhotoURL,
		DeliveryPhotoURL:        o.DeliveryPhotoURL,
		CreatedAt:               o.CreatedAt,
		UpdatedAt:               o.UpdatedAt,
	}
}

func LogToDomain(l *OrderStatusLogDB) entities.OrderStatusLog {
	log := entities.OrderStatusLog{
		ID:        l.ID,
		OrderID:   l.OrderID,
		ToStatus:  entities.OrderStatusType(l.ToStatus),
		ChangedBy: l.ChangedBy,
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
	}
	if l.FromStatus != nil {
		from := entities.OrderStatusType(*l.FromStatus)
		log.FromStatus = &from
	}
	return log
}

func LogsToDomainList(logsDB []OrderStatusLogDB) []entities.OrderStatusLog {
	result := make([]entities.OrderStatusLog, len(logsDB))
	for i := range logsDB {
		result[i] = LogToDomain(&logsDB[i])
	}
	return result
}

func statusPtrToString(s *entities.OrderStatusType) *string {
	if s == nil {
		return nil
	}
	v := s.String()
	return &v
}
