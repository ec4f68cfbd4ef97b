package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"telmesh/internal/domain/plan"
	"telmesh/internal/infrastructure/persistence/mappers"
	"telmesh/internal/infrastructure/persistence/models"
	apperrors "telmesh/internal/shared/errors"
	"telmesh/internal/shared/logger"
)

type PlanRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, log logger.Interface) *PlanRepository {
	return &PlanRepository{db: db, logger: log}
}

func (r *PlanRepository) Save(ctx context.Context, p *plan.Plan) error {
	model := mappers.PlanToModel(p)

	if model.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				return apperrors.NewConflictError("service plan name already exists")
			}
			return fmt.Errorf("failed to create service plan: %w", err)
		}
		return p.SetID(model.ID)
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("service plan name already exists")
		}
		return fmt.Errorf("failed to update service plan: %w", err)
	}
	return nil
}

func (r *PlanRepository) FindByID(ctx context.Context, id uint) (*plan.Plan, error) {
	var model models.ServicePlanModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("service plan not found", fmt.Sprintf("id=%d", id))
		}
		return nil, fmt.Errorf("failed to get service plan: %w", err)
	}
	return mappers.PlanToDomain(&model)
}

func (r *PlanRepository) FindAll(ctx context.Context) ([]*plan.Plan, error) {
	var planModels []models.ServicePlanModel
	if err := r.db.WithContext(ctx).Find(&planModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list service plans: %w", err)
	}
	return mappers.PlansToDomain(planModels)
}

func (r *PlanRepository) List(ctx context.Context, offset, limit int) ([]*plan.Plan, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ServicePlanModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count service plans: %w", err)
	}

	var planModels []models.ServicePlanModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&planModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list service plans: %w", err)
	}

	plans, err := mappers.PlansToDomain(planModels)
	if err != nil {
		return nil, 0, err
	}
	return plans, total, nil
}

func (r *PlanRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ServicePlanModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check service plan existence: %w", err)
	}
	return count > 0, nil
}

// DeleteByID removes the plan, the orders placed for it (with their
// payments), the feedback written about it, and both join tables' rows.
// Subscribed users and linked availability windows survive.
func (r *PlanRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.ServicePlanModel
		if err := tx.First(&model, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.NewNotFoundError("service plan not found", fmt.Sprintf("id=%d", id))
			}
			return fmt.Errorf("failed to load service plan: %w", err)
		}

		var orderIDs []uint
		if err := tx.Model(&models.OrderModel{}).
			Where("service_plan_id = ?", id).
			Pluck("id", &orderIDs).Error; err != nil {
			return fmt.Errorf("failed to load plan orders: %w", err)
		}
		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&models.PaymentModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete order payments: %w", err)
			}
			if err := tx.Where("id IN ?", orderIDs).Delete(&models.OrderModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete plan orders: %w", err)
			}
		}

		if err := tx.Where("service_plan_id = ?", id).Delete(&models.FeedbackModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete plan feedback: %w", err)
		}
		if err := tx.Where("service_plan_id = ?", id).Delete(&models.UserPlanModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete plan memberships: %w", err)
		}
		if err := tx.Where("service_plan_id = ?", id).Delete(&models.PlanAvailabilityModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete plan availability links: %w", err)
		}
		if err := tx.Delete(&models.ServicePlanModel{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete service plan: %w", err)
		}
		return nil
	})
}

// Search matches the query against plan name and description,
// case-insensitively.
func (r *PlanRepository) Search(ctx context.Context, query string) ([]*plan.Plan, error) {
	var planModels []models.ServicePlanModel
	pattern := "%" + strings.ToLower(query) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Find(&planModels).Error; err != nil {
		return nil, fmt.Errorf("failed to search service plans: %w", err)
	}
	return mappers.PlansToDomain(planModels)
}

func (r *PlanRepository) FindByUserID(ctx context.Context, userID uint) ([]*plan.Plan, error) {
	var planModels []models.ServicePlanModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN user_service_plans usp ON usp.service_plan_id = service_plans.id").
		Where("usp.user_id = ?", userID).
		Find(&planModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find plans by user: %w", err)
	}
	return mappers.PlansToDomain(planModels)
}

func (r *PlanRepository) CountUsers(ctx context.Context, planID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserPlanModel{}).
		Where("service_plan_id = ?", planID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count plan users: %w", err)
	}
	return count, nil
}

func (r *PlanRepository) CountOrders(ctx context.Context, planID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("service_plan_id = ?", planID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count plan orders: %w", err)
	}
	return count, nil
}

func (r *PlanRepository) AddAvailability(ctx context.Context, planID, availabilityID uint) error {
	link := &models.PlanAvailabilityModel{
		ServicePlanID:         planID,
		ServiceAvailabilityID: availabilityID,
	}
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil
		}
		r.logger.Errorw("failed to link availability to plan", "plan_id", planID, "availability_id", availabilityID, "error", err)
		return fmt.Errorf("failed to link availability to plan: %w", err)
	}
	return nil
}

func (r *PlanRepository) RemoveAvailability(ctx context.Context, planID, availabilityID uint) error {
	result := r.db.WithContext(ctx).
		Where("service_plan_id = ? AND service_availability_id = ?", planID, availabilityID).
		Delete(&models.PlanAvailabilityModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to unlink availability from plan", "plan_id", planID, "availability_id", availabilityID, "error", result.Error)
		return fmt.Errorf("failed to unlink availability from plan: %w", result.Error)
	}
	return nil
}

func (r *PlanRepository) HasAvailability(ctx context.Context, planID, availabilityID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PlanAvailabilityModel{}).
		Where("service_plan_id = ? AND service_availability_id = ?", planID, availabilityID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check plan availability link: %w", err)
	}
	return count > 0, nil
}

func (r *PlanRepository) AvailabilityIDs(ctx context.Context, planID uint) ([]uint, error) {
	var availabilityIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.PlanAvailabilityModel{}).
		Where("service_plan_id = ?", planID).
		Pluck("service_availability_id", &availabilityIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load availability IDs: %w", err)
	}
	return availabilityIDs, nil
}
