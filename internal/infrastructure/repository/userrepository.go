// Package repository contains the GORM-backed implementations of the
// domain repository contracts. Relationship rows (membership join tables,
// owning foreign keys) are managed here explicitly; no GORM association
// inference is used.
package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"telmesh/internal/domain/user"
	"telmesh/internal/infrastructure/persistence/mappers"
	"telmesh/internal/infrastructure/persistence/models"
	apperrors "telmesh/internal/shared/errors"
	"telmesh/internal/shared/logger"
)

type UserRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, log logger.Interface) *UserRepository {
	return &UserRepository{db: db, logger: log}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)

	if model.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				return apperrors.NewConflictError("username or email already exists")
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return u.SetID(model.ID)
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("username or email already exists")
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("user not found", fmt.Sprintf("id=%d", id))
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return mappers.UserToDomain(&model)
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*user.User, error) {
	var userModels []models.UserModel
	if err := r.db.WithContext(ctx).Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return mappers.UsersToDomain(userModels)
}

func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]*user.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var userModels []models.UserModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users, err := mappers.UsersToDomain(userModels)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

// DeleteByID removes the user and everything exclusively owned by it:
// orders (with their payments), payments, feedback, support tickets, and
// plan membership rows. Plans the user belonged to are preserved.
func (r *UserRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.UserModel
		if err := tx.First(&model, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.NewNotFoundError("user not found", fmt.Sprintf("id=%d", id))
			}
			return fmt.Errorf("failed to load user: %w", err)
		}
		return deleteUserRows(tx, id)
	})
}

// deleteUserRows deletes a user's owned rows inside an open transaction.
// Shared with the region cascade.
func deleteUserRows(tx *gorm.DB, userID uint) error {
	var orderIDs []uint
	if err := tx.Model(&models.OrderModel{}).
		Where("user_id = ?", userID).
		Pluck("id", &orderIDs).Error; err != nil {
		return fmt.Errorf("failed to load user orders: %w", err)
	}

	if len(orderIDs) > 0 {
		if err := tx.Where("order_id IN ?", orderIDs).Delete(&models.PaymentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete order payments: %w", err)
		}
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.PaymentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete user payments: %w", err)
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.OrderModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete user orders: %w", err)
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.FeedbackModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete user feedback: %w", err)
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.SupportTicketModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete user tickets: %w", err)
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.UserPlanModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete plan memberships: %w", err)
	}
	if err := tx.Delete(&models.UserModel{}, userID).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) SearchByUsername(ctx context.Context, username string) ([]*user.User, error) {
	var userModels []models.UserModel
	pattern := "%" + strings.ToLower(username) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(username) LIKE ?", pattern).
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return mappers.UsersToDomain(userModels)
}

func (r *UserRepository) FindByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	var userModels []models.UserModel
	if err := r.db.WithContext(ctx).
		Where("role = ?", role.String()).
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find users by role: %w", err)
	}
	return mappers.UsersToDomain(userModels)
}

func (r *UserRepository) FindByRegionID(ctx context.Context, regionID uint) ([]*user.User, error) {
	var userModels []models.UserModel
	if err := r.db.WithContext(ctx).
		Where("region_id = ?", regionID).
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find users by region: %w", err)
	}
	return mappers.UsersToDomain(userModels)
}

func (r *UserRepository) FindByPlanID(ctx context.Context, planID uint) ([]*user.User, error) {
	var userModels []models.UserModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN user_service_plans usp ON usp.user_id = users.id").
		Where("usp.service_plan_id = ?", planID).
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find users by plan: %w", err)
	}
	return mappers.UsersToDomain(userModels)
}

func (r *UserRepository) AddPlanMembership(ctx context.Context, userID, planID uint) error {
	membership := &models.UserPlanModel{
		UserID:        userID,
		ServicePlanID: planID,
	}
	if err := r.db.WithContext(ctx).Create(membership).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			// Already a member: Set semantics, nothing to do.
			return nil
		}
		r.logger.Errorw("failed to create plan membership", "user_id", userID, "plan_id", planID, "error", err)
		return fmt.Errorf("failed to create plan membership: %w", err)
	}
	return nil
}

func (r *UserRepository) RemovePlanMembership(ctx context.Context, userID, planID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND service_plan_id = ?", userID, planID).
		Delete(&models.UserPlanModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to remove plan membership", "user_id", userID, "plan_id", planID, "error", result.Error)
		return fmt.Errorf("failed to remove plan membership: %w", result.Error)
	}
	return nil
}

func (r *UserRepository) HasPlanMembership(ctx context.Context, userID, planID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserPlanModel{}).
		Where("user_id = ? AND service_plan_id = ?", userID, planID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check plan membership: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) PlanIDs(ctx context.Context, userID uint) ([]uint, error) {
	var planIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.UserPlanModel{}).
		Where("user_id = ?", userID).
		Pluck("service_plan_id", &planIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load plan IDs: %w", err)
	}
	return planIDs, nil
}
