package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// trackingRepository implements the repository.TrackingRepository interface.
// It only ever inserts and reads; tracking rows are immutable history.
type trackingRepository struct {
	db *gorm.DB
}

// NewTrackingRepository is the constructor for trackingRepository.
func NewTrackingRepository(db *gorm.DB) repository.TrackingRepository {
	return &trackingRepository{
		db: db,
	}
}

// Append persists a new tracking event.
func (repo *trackingRepository) Append(ctx context.Context, event *entity.TrackingEvent) error {
	eventM := fromTrackingDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("invalid order reference in tracking event")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required tracking information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append tracking event")
	}

	// Update the entity with generated values
	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// ListByOrder retrieves all events of an order, oldest first, ordered by
// occurred-at with creation time breaking ties.
func (repo *trackingRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.TrackingEvent, error) {
	var eventModels []*model.TrackingEventModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("occurred_at ASC, created_at ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tracking events by order")
	}

	events := make([]*entity.TrackingEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toTrackingDomain(eventM))
	}

	return events, nil
}

// FindLatestByOrder retrieves the newest event of an order.
func (repo *trackingRepository) FindLatestByOrder(ctx context.Context, orderID uuid.UUID) (*entity.TrackingEvent, error) {
	var eventM model.TrackingEventModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("occurred_at DESC, created_at DESC").
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoTrackingEvents
		}

		return nil, errors.Wrap(err, "failed to find latest tracking event")
	}

	return toTrackingDomain(&eventM), nil
}

// --- Mapper Functions ---

// toTrackingDomain converts a GORM TrackingEventModel to a domain TrackingEvent entity.
func toTrackingDomain(data *model.TrackingEventModel) *entity.TrackingEvent {
	if data == nil {
		return nil
	}

	return &entity.TrackingEvent{
		ID:         data.ID,
		OrderID:    data.OrderID,
		Status:     entity.OrderStatus(data.Status),
		OccurredAt: data.OccurredAt,
		Location:   data.Location,
		Carrier:    data.Carrier,
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt,
	}
}

// fromTrackingDomain converts a domain TrackingEvent entity to a GORM TrackingEventModel.
func fromTrackingDomain(data *entity.TrackingEvent) *model.TrackingEventModel {
	if data == nil {
		return nil
	}

	return &model.TrackingEventModel{
		ID:         data.ID,
		OrderID:    data.OrderID,
		Status:     data.Status.String(),
		OccurredAt: data.OccurredAt,
		Location:   data.Location,
		Carrier:    data.Carrier,
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt,
	}
}
