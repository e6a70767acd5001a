package release

import (
	"context"
	"fmt"
	"strings"

	"depot/internal/entities"

	"github.com/google/uuid"
)

type Service struct {
	repository   Repository
	orderRecords OrderRecordRepository
	publisher    EventPublisher
	txManager    TxManager
	clock        Clock
}

func New(
	repository Repository,
	orderRecords OrderRecordRepository,
	publisher EventPublisher,
	txManager TxManager,
	clock Clock,
) *Service {
	return &Service{
		repository:   repository,
		orderRecords: orderRecords,
		publisher:    publisher,
		txManager:    txManager,
		clock:        clock,
	}
}

// CreateRelease выпуск без явного намерения редактировать. Второй выпуск того же
// контейнера получает ErrReleaseAlreadyExists от уникального индекса.
func (s *Service) CreateRelease(ctx context.Context, releaseModify entities.ReleaseModify) (*entities.Release, error) {
	if err := validateCreate(releaseModify); err != nil {
		return nil, err
	}

	containerNumber := strings.TrimSpace(*releaseModify.ContainerNumber)
	releaseNumber := strings.TrimSpace(*releaseModify.ReleaseNumber)
	customerName := strings.TrimSpace(*releaseModify.CustomerName)
	pickupDate := releaseModify.PickupDate.UTC()
	id := uuid.New()

	create := entities.ReleaseModify{
		ID:              &id,
		ContainerNumber: &containerNumber,
		ReleaseNumber:   &releaseNumber,
		PickupDate:      &pickupDate,
		CustomerName:    &customerName,
		Notes:           releaseModify.Notes,
	}

	var created *entities.Release
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		exists, err := s.orderRecords.ContainerExists(ctx, containerNumber)
		if err != nil {
			return fmt.Errorf("check container: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrContainerNotFound, containerNumber)
		}

		created, err = s.repository.Create(ctx, create)
		if err != nil {
			return fmt.Errorf("create release: %w", err)
		}

		return s.publish(ctx, entities.ReleaseCreated, *created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// EditRelease перезаписывает поля существующего выпуска одним UPDATE.
func (s *Service) EditRelease(ctx context.Context, releaseModify entities.ReleaseModify) (*entities.Release, error) {
	if err := validateEdit(releaseModify); err != nil {
		return nil, err
	}

	containerNumber := strings.TrimSpace(*releaseModify.ContainerNumber)
	edit := entities.ReleaseModify{
		ContainerNumber: &containerNumber,
		Notes:           releaseModify.Notes,
	}
	if releaseModify.ReleaseNumber != nil {
		releaseNumber := strings.TrimSpace(*releaseModify.ReleaseNumber)
		edit.ReleaseNumber = &releaseNumber
	}
	if releaseModify.CustomerName != nil {
		customerName := strings.TrimSpace(*releaseModify.CustomerName)
		edit.CustomerName = &customerName
	}
	if releaseModify.PickupDate != nil {
		pickupDate := releaseModify.PickupDate.UTC()
		edit.PickupDate = &pickupDate
	}

	var edited *entities.Release
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		edited, err = s.repository.Update(ctx, edit)
		if err != nil {
			return fmt.Errorf("update release: %w", err)
		}

		return s.publish(ctx, entities.ReleaseEdited, *edited)
	})
	if err != nil {
		return nil, err
	}
	return edited, nil
}

func (s *Service) GetRelease(ctx context.Context, containerNumber string) (*entities.Release, error) {
	if isBlank(containerNumber) {
		return nil, ErrInvalidContainerNumber
	}

	release, err := s.repository.GetByContainer(ctx, strings.TrimSpace(containerNumber))
	if err != nil {
		return nil, fmt.Errorf("get release: %w", err)
	}
	return release, nil
}

// publish внутри транзакции: ошибка отправки откатывает запись выпуска.
func (s *Service) publish(ctx context.Context, eventType entities.ReleaseEventType, release entities.Release) error {
	err := s.publisher.PublishReleaseEvent(ctx, entities.ReleaseEvent{
		Type:       eventType,
		Release:    release,
		OccurredAt: s.clock.Now(),
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}
	return nil
}

func validateCreate(releaseModify entities.ReleaseModify) error {
	if releaseModify.ContainerNumber == nil || isBlank(*releaseModify.ContainerNumber) {
		return ErrInvalidContainerNumber
	}
	if releaseModify.ReleaseNumber == nil || isBlank(*releaseModify.ReleaseNumber) {
		return ErrInvalidReleaseNumber
	}
	if releaseModify.PickupDate == nil || !isValidPickupDate(*releaseModify.PickupDate) {
		return ErrInvalidPickupDate
	}
	if releaseModify.CustomerName == nil || isBlank(*releaseModify.CustomerName) {
		return ErrInvalidCustomerName
	}
	return nil
}

func validateEdit(releaseModify entities.ReleaseModify) error {
	if releaseModify.ContainerNumber == nil || isBlank(*releaseModify.ContainerNumber) {
		return ErrInvalidContainerNumber
	}
	if releaseModify.ReleaseNumber == nil &&
		releaseModify.PickupDate == nil &&
		releaseModify.CustomerName == nil &&
		releaseModify.Notes == nil {
		return ErrNothingToUpdate
	}

	if releaseModify.ReleaseNumber != nil && isBlank(*releaseModify.ReleaseNumber) {
		return ErrInvalidReleaseNumber
	}
	if releaseModify.PickupDate != nil && !isValidPickupDate(*releaseModify.PickupDate) {
		return ErrInvalidPickupDate
	}
	if releaseModify.CustomerName != nil && isBlank(*releaseModify.CustomerName) {
		return ErrInvalidCustomerName
	}
	return nil
}
