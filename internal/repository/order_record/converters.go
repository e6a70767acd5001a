package order_record

import "depot/internal/entities"

func ToDomain(r *OrderRecordDB) *entities.OrderRecord {
	if r == nil {
		return nil
	}
	return &entities.OrderRecord{
		ID:              r.ID,
		ContainerNumber: r.ContainerNumber,
		ContainerType:   r.ContainerType,
		EventType:       entities.EventType(r.EventType),
		CustomerName:    r.CustomerName,
		Location:        r.Location,
		Amount:          entities.Money(r.AmountMinor),
		FreeDays:        r.FreeDays,
		PerDiemRate:     entities.Money(r.PerDiemMinor),
		InvoiceID:       r.InvoiceID,
		ReleaseNumber:   r.ReleaseNumber,
		DeliveryDate:    r.DeliveryDate,
		PickupDate:      r.PickupDate,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func FromDomainModify(r *entities.OrderRecordModify) *OrderRecordModifyDB {
	if r == nil {
		return nil
	}
	modifyDB := &OrderRecordModifyDB{
		ID:              r.ID,
		ContainerNumber: r.ContainerNumber,
		ContainerType:   r.ContainerType,
		CustomerName:    r.CustomerName,
		Location:        r.Location,
		FreeDays:        r.FreeDays,
		InvoiceID:       r.InvoiceID,
		ReleaseNumber:   r.ReleaseNumber,
		DeliveryDate:    r.DeliveryDate,
		PickupDate:      r.PickupDate,
		CreatedAt:       r.CreatedAt,
	}

	if r.EventType != nil {
		eventType := r.EventType.String()
		modifyDB.EventType = &eventType
	}
	if r.Amount != nil {
		amount := r.Amount.Minor()
		modifyDB.AmountMinor = &amount
	}
	if r.PerDiemRate != nil {
		rate := r.PerDiemRate.Minor()
		modifyDB.PerDiemMinor = &rate
	}

	return modifyDB
}
