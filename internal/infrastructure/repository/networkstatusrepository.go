package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"telmesh/internal/domain/network"
	"telmesh/internal/infrastructure/persistence/mappers"
	"telmesh/internal/infrastructure/persistence/models"
	apperrors "telmesh/internal/shared/errors"
	"telmesh/internal/shared/logger"
)

type NetworkStatusRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewNetworkStatusRepository(db *gorm.DB, log logger.Interface) *NetworkStatusRepository {
	return &NetworkStatusRepository{db: db, logger: log}
}

func (r *NetworkStatusRepository) Save(ctx context.Context, s *network.Status) error {
	model := mappers.NetworkStatusToModel(s)

	if model.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create network status: %w", err)
		}
		return s.SetID(model.ID)
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update network status: %w", err)
	}
	return nil
}

// SaveAll persists the given statuses in a single transaction. New
// statuses get their assigned IDs written back.
func (r *NetworkStatusRepository) SaveAll(ctx context.Context, statuses []*network.Status) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range statuses {
			model := mappers.NetworkStatusToModel(s)
			if model.ID == 0 {
				if err := tx.Create(model).Error; err != nil {
					return fmt.Errorf("failed to create network status: %w", err)
				}
				if err := s.SetID(model.ID); err != nil {
					return err
				}
				continue
			}
			if err := tx.Save(model).Error; err != nil {
				return fmt.Errorf("failed to update network status: %w", err)
			}
		}
		return nil
	})
}

func (r *NetworkStatusRepository) FindByID(ctx context.Context, id uint) (*network.Status, error) {
	var model models.NetworkStatusModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("network status not found", fmt.Sprintf("id=%d", id))
		}
		return nil, fmt.Errorf("failed to get network status: %w", err)
	}
	return mappers.NetworkStatusToDomain(&model)
}

// FindByIDs loads the statuses whose IDs exist; unknown IDs are
// silently absent from the result.
func (r *NetworkStatusRepository) FindByIDs(ctx context.Context, ids []uint) ([]*network.Status, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var statusModels []models.NetworkStatusModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&statusModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get network statuses: %w", err)
	}
	return mappers.NetworkStatusesToDomain(statusModels)
}

func (r *NetworkStatusRepository) FindAll(ctx context.Context) ([]*network.Status, error) {
	var statusModels []models.NetworkStatusModel
	if err := r.db.WithContext(ctx).Find(&statusModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list network statuses: %w", err)
	}
	return mappers.NetworkStatusesToDomain(statusModels)
}

func (r *NetworkStatusRepository) List(ctx context.Context, offset, limit int) ([]*network.Status, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.NetworkStatusModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count network statuses: %w", err)
	}

	var statusModels []models.NetworkStatusModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&statusModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list network statuses: %w", err)
	}

	statuses, err := mappers.NetworkStatusesToDomain(statusModels)
	if err != nil {
		return nil, 0, err
	}
	return statuses, total, nil
}

func (r *NetworkStatusRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.NetworkStatusModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check network status existence: %w", err)
	}
	return count > 0, nil
}

func (r *NetworkStatusRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.NetworkStatusModel
		if err := tx.First(&model, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.NewNotFoundError("network status not found", fmt.Sprintf("id=%d", id))
			}
			return fmt.Errorf("failed to load network status: %w", err)
		}
		if err := tx.Where("network_status_id = ?", id).
			Delete(&models.NetworkAvailabilityModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete network availability links: %w", err)
		}
		if err := tx.Delete(&models.NetworkStatusModel{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete network status: %w", err)
		}
		return nil
	})
}

func (r *NetworkStatusRepository) FindByRegionID(ctx context.Context, regionID uint) ([]*network.Status, error) {
	var statusModels []models.NetworkStatusModel
	if err := r.db.WithContext(ctx).
		Where("region_id = ?", regionID).
		Find(&statusModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find network statuses by region: %w", err)
	}
	return mappers.NetworkStatusesToDomain(statusModels)
}

func (r *NetworkStatusRepository) FindByUpdateDateBetween(ctx context.Context, start, end time.Time) ([]*network.Status, error) {
	var statusModels []models.NetworkStatusModel
	if err := r.db.WithContext(ctx).
		Where("update_date BETWEEN ? AND ?", start.UnixMilli(), end.UnixMilli()).
		Find(&statusModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find network statuses by date range: %w", err)
	}
	return mappers.NetworkStatusesToDomain(statusModels)
}

func (r *NetworkStatusRepository) FindByAvailabilityID(ctx context.Context, availabilityID uint) ([]*network.Status, error) {
	var statusModels []models.NetworkStatusModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN network_status_availabilities nsa ON nsa.network_status_id = network_statuses.id").
		Where("nsa.service_availability_id = ?", availabilityID).
		Find(&statusModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find network statuses by availability: %w", err)
	}
	return mappers.NetworkStatusesToDomain(statusModels)
}

func (r *NetworkStatusRepository) AddAvailability(ctx context.Context, statusID, availabilityID uint) error {
	link := &models.NetworkAvailabilityModel{
		NetworkStatusID:       statusID,
		ServiceAvailabilityID: availabilityID,
	}
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil
		}
		r.logger.Errorw("failed to link availability to network status", "status_id", statusID, "availability_id", availabilityID, "error", err)
		return fmt.Errorf("failed to link availability to network status: %w", err)
	}
	return nil
}

func (r *NetworkStatusRepository) RemoveAvailability(ctx context.Context, statusID, availabilityID uint) error {
	result := r.db.WithContext(ctx).
		Where("network_status_id = ? AND service_availability_id = ?", statusID, availabilityID).
		Delete(&models.NetworkAvailabilityModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to unlink availability from network status", "status_id", statusID, "availability_id", availabilityID, "error", result.Error)
		return fmt.Errorf("failed to unlink availability from network status: %w", result.Error)
	}
	return nil
}

func (r *NetworkStatusRepository) HasAvailability(ctx context.Context, statusID, availabilityID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.NetworkAvailabilityModel{}).
		Where("network_status_id = ? AND service_availability_id = ?", statusID, availabilityID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check network availability link: %w", err)
	}
	return count > 0, nil
}

func (r *NetworkStatusRepository) AvailabilityIDs(ctx context.Context, statusID uint) ([]uint, error) {
	var availabilityIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.NetworkAvailabilityModel{}).
		Where("network_status_id = ?", statusID).
		Pluck("service_availability_id", &availabilityIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load availability IDs: %w", err)
	}
	return availabilityIDs, nil
}
