package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"telmesh/internal/domain/region"
	"telmesh/internal/infrastructure/persistence/mappers"
	"telmesh/internal/infrastructure/persistence/models"
	apperrors "telmesh/internal/shared/errors"
	"telmesh/internal/shared/logger"
)

type RegionRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewRegionRepository(db *gorm.DB, log logger.Interface) *RegionRepository {
	return &RegionRepository{db: db, logger: log}
}

func (r *RegionRepository) Save(ctx context.Context, reg *region.Region) error {
	model := mappers.RegionToModel(reg)

	if model.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				return apperrors.NewConflictError("region name already exists")
			}
			return fmt.Errorf("failed to create region: %w", err)
		}
		return reg.SetID(model.ID)
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("region name already exists")
		}
		return fmt.Errorf("failed to update region: %w", err)
	}
	return nil
}

func (r *RegionRepository) FindByID(ctx context.Context, id uint) (*region.Region, error) {
	var model models.RegionModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("region not found", fmt.Sprintf("id=%d", id))
		}
		return nil, fmt.Errorf("failed to get region: %w", err)
	}
	return mappers.RegionToDomain(&model)
}

func (r *RegionRepository) FindAll(ctx context.Context) ([]*region.Region, error) {
	var regionModels []models.RegionModel
	if err := r.db.WithContext(ctx).Find(&regionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	return mappers.RegionsToDomain(regionModels)
}

func (r *RegionRepository) List(ctx context.Context, offset, limit int) ([]*region.Region, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.RegionModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count regions: %w", err)
	}

	var regionModels []models.RegionModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&regionModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list regions: %w", err)
	}

	regions, err := mappers.RegionsToDomain(regionModels)
	if err != nil {
		return nil, 0, err
	}
	return regions, total, nil
}

func (r *RegionRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.RegionModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check region existence: %w", err)
	}
	return count > 0, nil
}

// DeleteByID removes the region, every user living in it (with each
// user's owned rows), and the region's network statuses.
func (r *RegionRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.RegionModel
		if err := tx.First(&model, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.NewNotFoundError("region not found", fmt.Sprintf("id=%d", id))
			}
			return fmt.Errorf("failed to load region: %w", err)
		}

		var userIDs []uint
		if err := tx.Model(&models.UserModel{}).
			Where("region_id = ?", id).
			Pluck("id", &userIDs).Error; err != nil {
			return fmt.Errorf("failed to load region users: %w", err)
		}
		for _, userID := range userIDs {
			if err := deleteUserRows(tx, userID); err != nil {
				return err
			}
		}

		var statusIDs []uint
		if err := tx.Model(&models.NetworkStatusModel{}).
			Where("region_id = ?", id).
			Pluck("id", &statusIDs).Error; err != nil {
			return fmt.Errorf("failed to load region network statuses: %w", err)
		}
		if len(statusIDs) > 0 {
			if err := tx.Where("network_status_id IN ?", statusIDs).
				Delete(&models.NetworkAvailabilityModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete network availability links: %w", err)
			}
			if err := tx.Where("id IN ?", statusIDs).
				Delete(&models.NetworkStatusModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete network statuses: %w", err)
			}
		}

		if err := tx.Delete(&models.RegionModel{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete region: %w", err)
		}
		return nil
	})
}

func (r *RegionRepository) SearchByName(ctx context.Context, name string) ([]*region.Region, error) {
	var regionModels []models.RegionModel
	pattern := "%" + strings.ToLower(name) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Find(&regionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to search regions by name: %w", err)
	}
	return mappers.RegionsToDomain(regionModels)
}

func (r *RegionRepository) SearchByDescription(ctx context.Context, description string) ([]*region.Region, error) {
	var regionModels []models.RegionModel
	pattern := "%" + strings.ToLower(description) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(description) LIKE ?", pattern).
		Find(&regionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to search regions by description: %w", err)
	}
	return mappers.RegionsToDomain(regionModels)
}
