package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"telmesh/internal/domain/feedback"
	"telmesh/internal/infrastructure/persistence/mappers"
	"telmesh/internal/infrastructure/persistence/models"
	apperrors "telmesh/internal/shared/errors"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Save(ctx context.Context, f *feedback.Feedback) error {
	model := mappers.FeedbackToModel(f)

	if model.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create feedback: %w", err)
		}
		return f.SetID(model.ID)
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepository) FindByID(ctx context.Context, id uint) (*feedback.Feedback, error) {
	var model models.FeedbackModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("feedback not found", fmt.Sprintf("id=%d", id))
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return mappers.FeedbackToDomain(&model)
}

func (r *FeedbackRepository) FindAll(ctx context.Context) ([]*feedback.Feedback, error) {
	var feedbackModels []models.FeedbackModel
	if err := r.db.WithContext(ctx).Find(&feedbackModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return mappers.FeedbacksToDomain(feedbackModels)
}

func (r *FeedbackRepository) List(ctx context.Context, offset, limit int) ([]*feedback.Feedback, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.FeedbackModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	var feedbackModels []models.FeedbackModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&feedbackModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list feedback: %w", err)
	}

	feedbacks, err := mappers.FeedbacksToDomain(feedbackModels)
	if err != nil {
		return nil, 0, err
	}
	return feedbacks, total, nil
}

func (r *FeedbackRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FeedbackModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check feedback existence: %w", err)
	}
	return count > 0, nil
}

func (r *FeedbackRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.FeedbackModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete feedback: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("feedback not found", fmt.Sprintf("id=%d", id))
	}
	return nil
}

func (r *FeedbackRepository) FindByRating(ctx context.Context, rating int) ([]*feedback.Feedback, error) {
	var feedbackModels []models.FeedbackModel
	if err := r.db.WithContext(ctx).
		Where("rating = ?", rating).
		Find(&feedbackModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find feedback by rating: %w", err)
	}
	return mappers.FeedbacksToDomain(feedbackModels)
}

func (r *FeedbackRepository) FindByRatingBetween(ctx context.Context, min, max int) ([]*feedback.Feedback, error) {
	var feedbackModels []models.FeedbackModel
	if err := r.db.WithContext(ctx).
		Where("rating BETWEEN ? AND ?", min, max).
		Find(&feedbackModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find feedback by rating range: %w", err)
	}
	return mappers.FeedbacksToDomain(feedbackModels)
}

func (r *FeedbackRepository) FindByUserID(ctx context.Context, userID uint) ([]*feedback.Feedback, error) {
	var feedbackModels []models.FeedbackModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&feedbackModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find feedback by user: %w", err)
	}
	return mappers.FeedbacksToDomain(feedbackModels)
}

func (r *FeedbackRepository) FindByPlanID(ctx context.Context, planID uint) ([]*feedback.Feedback, error) {
	var feedbackModels []models.FeedbackModel
	if err := r.db.WithContext(ctx).
		Where("service_plan_id = ?", planID).
		Find(&feedbackModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find feedback by plan: %w", err)
	}
	return mappers.FeedbacksToDomain(feedbackModels)
}
