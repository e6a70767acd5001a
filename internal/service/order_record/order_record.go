package order_record

import (
	"context"
	"fmt"
	"strings"
	"time"

	"depot/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// Ingest сохраняет запись системы заказов. Повторная доставка того же сообщения
// перезаписывает запись по id.
func (s *Service) Ingest(ctx context.Context, orderRecordModify entities.OrderRecordModify) (*entities.OrderRecord, error) {
	if err := validate(orderRecordModify); err != nil {
		return nil, err
	}

	record, err := s.repository.Upsert(ctx, normalize(orderRecordModify))
	if err != nil {
		return nil, fmt.Errorf("upsert order record: %w", err)
	}
	return record, nil
}

func normalize(m entities.OrderRecordModify) entities.OrderRecordModify {
	m.ID = trimmed(m.ID)
	m.ContainerNumber = trimmed(m.ContainerNumber)
	m.ContainerType = trimmed(m.ContainerType)
	m.CustomerName = trimmed(m.CustomerName)
	m.Location = trimmed(m.Location)
	m.InvoiceID = trimmed(m.InvoiceID)
	m.ReleaseNumber = trimmed(m.ReleaseNumber)

	m.CreatedAt = utc(m.CreatedAt)
	m.DeliveryDate = utc(m.DeliveryDate)
	m.PickupDate = utc(m.PickupDate)
	return m
}

// trimmed пустые необязательные строки превращаются в nil.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
