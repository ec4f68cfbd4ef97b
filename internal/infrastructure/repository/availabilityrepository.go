package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"telmesh/internal/domain/availability"
	"telmesh/internal/infrastructure/persistence/mappers"
	"telmesh/internal/infrastructure/persistence/models"
	apperrors "telmesh/internal/shared/errors"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) Save(ctx context.Context, a *availability.Availability) error {
	model := mappers.AvailabilityToModel(a)

	if model.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create availability: %w", err)
		}
		return a.SetID(model.ID)
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update availability: %w", err)
	}
	return nil
}

func (r *AvailabilityRepository) FindByID(ctx context.Context, id uint) (*availability.Availability, error) {
	var model models.ServiceAvailabilityModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("availability not found", fmt.Sprintf("id=%d", id))
		}
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}
	return mappers.AvailabilityToDomain(&model)
}

func (r *AvailabilityRepository) FindAll(ctx context.Context) ([]*availability.Availability, error) {
	var availabilityModels []models.ServiceAvailabilityModel
	if err := r.db.WithContext(ctx).Find(&availabilityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list availabilities: %w", err)
	}
	return mappers.AvailabilitiesToDomain(availabilityModels)
}

func (r *AvailabilityRepository) FindAllSortedByDate(ctx context.Context) ([]*availability.Availability, error) {
	var availabilityModels []models.ServiceAvailabilityModel
	if err := r.db.WithContext(ctx).
		Order("availability_date").
		Find(&availabilityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list availabilities by date: %w", err)
	}
	return mappers.AvailabilitiesToDomain(availabilityModels)
}

func (r *AvailabilityRepository) List(ctx context.Context, offset, limit int) ([]*availability.Availability, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ServiceAvailabilityModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count availabilities: %w", err)
	}

	var availabilityModels []models.ServiceAvailabilityModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&availabilityModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list availabilities: %w", err)
	}

	availabilities, err := mappers.AvailabilitiesToDomain(availabilityModels)
	if err != nil {
		return nil, 0, err
	}
	return availabilities, total, nil
}

func (r *AvailabilityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ServiceAvailabilityModel{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count availabilities: %w", err)
	}
	return count, nil
}

func (r *AvailabilityRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ServiceAvailabilityModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check availability existence: %w", err)
	}
	return count > 0, nil
}

// DeleteByID removes the availability window and its links to plans and
// network statuses. Plans and statuses themselves survive.
func (r *AvailabilityRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.ServiceAvailabilityModel
		if err := tx.First(&model, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.NewNotFoundError("availability not found", fmt.Sprintf("id=%d", id))
			}
			return fmt.Errorf("failed to load availability: %w", err)
		}
		return deleteAvailabilityRows(tx, []uint{id})
	})
}

// DeleteByStatus removes every availability carrying the given status,
// along with their join rows. Returns the number of windows removed.
func (r *AvailabilityRepository) DeleteByStatus(ctx context.Context, status string) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&models.ServiceAvailabilityModel{}).
			Where("availability_status = ?", status).
			Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("failed to load availabilities by status: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}
		deleted = int64(len(ids))
		return deleteAvailabilityRows(tx, ids)
	})
	return deleted, err
}

func deleteAvailabilityRows(tx *gorm.DB, ids []uint) error {
	if err := tx.Where("service_availability_id IN ?", ids).
		Delete(&models.PlanAvailabilityModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete plan availability links: %w", err)
	}
	if err := tx.Where("service_availability_id IN ?", ids).
		Delete(&models.NetworkAvailabilityModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete network availability links: %w", err)
	}
	if err := tx.Where("id IN ?", ids).
		Delete(&models.ServiceAvailabilityModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete availabilities: %w", err)
	}
	return nil
}

func (r *AvailabilityRepository) FindByStatus(ctx context.Context, status string) ([]*availability.Availability, error) {
	var availabilityModels []models.ServiceAvailabilityModel
	if err := r.db.WithContext(ctx).
		Where("availability_status = ?", status).
		Find(&availabilityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find availabilities by status: %w", err)
	}
	return mappers.AvailabilitiesToDomain(availabilityModels)
}

func (r *AvailabilityRepository) FindByDateBetween(ctx context.Context, start, end time.Time) ([]*availability.Availability, error) {
	var availabilityModels []models.ServiceAvailabilityModel
	if err := r.db.WithContext(ctx).
		Where("availability_date BETWEEN ? AND ?", start.UnixMilli(), end.UnixMilli()).
		Find(&availabilityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find availabilities by date range: %w", err)
	}
	return mappers.AvailabilitiesToDomain(availabilityModels)
}

func (r *AvailabilityRepository) PlanIDs(ctx context.Context, availabilityID uint) ([]uint, error) {
	var planIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.PlanAvailabilityModel{}).
		Where("service_availability_id = ?", availabilityID).
		Pluck("service_plan_id", &planIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load linked plan IDs: %w", err)
	}
	return planIDs, nil
}

func (r *AvailabilityRepository) NetworkStatusIDs(ctx context.Context, availabilityID uint) ([]uint, error) {
	var statusIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.NetworkAvailabilityModel{}).
		Where("service_availability_id = ?", availabilityID).
		Pluck("network_status_id", &statusIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load linked network status IDs: %w", err)
	}
	return statusIDs, nil
}
