package deliveryrepo

import (
	"context"
	"errors"

	"picante/internal/core/domain/model/deliveryorder"
	"picante/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryOrderRepository implements ports.DeliveryOrderRepository using GORM.
type GormDeliveryOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint, aggregate any)
}

// NewGormDeliveryOrderRepository creates a new GORM delivery order repository.
func NewGormDeliveryOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryOrderRepository {
	return &GormDeliveryOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery order together with its items and feeds the
// storage-assigned id back into the aggregate.
func (r *GormDeliveryOrderRepository) Add(ctx context.Context, aggregate *deliveryorder.DeliveryOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.SetID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing delivery order. Items never change
// after Add; the explicit column list keeps stage timestamps writable.
func (r *GormDeliveryOrderRepository) Update(ctx context.Context, aggregate *deliveryorder.DeliveryOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryOrderDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "TotalAmount", "ReadyAt", "DispatchedAt", "DeliveredAt").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("deliveryOrderId", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery order by ID with its items.
func (r *GormDeliveryOrderRepository) Get(ctx context.Context, id uint) (*deliveryorder.DeliveryOrder, error) {
	var dto DeliveryOrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryOrderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every delivery order, newest first.
func (r *GormDeliveryOrderRepository) GetAll(ctx context.Context) ([]*deliveryorder.DeliveryOrder, error) {
	var dtos []DeliveryOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllByStatus retrieves all delivery orders in a status, newest first.
func (r *GormDeliveryOrderRepository) GetAllByStatus(
	ctx context.Context, status deliveryorder.Status,
) ([]*deliveryorder.DeliveryOrder, error) {
	var dtos []DeliveryOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("status = ?", status.String()).
		Order("created_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []DeliveryOrderDTO) ([]*deliveryorder.DeliveryOrder, error) {
	orders := make([]*deliveryorder.DeliveryOrder, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, d)
	}
	return orders, nil
}
