// Package feedback implements the application service for plan
// feedback. Text and rating are validated before any store access on
// both create and update.
package feedback

import (
	"context"
	"time"

	"telmesh/internal/domain/feedback"
	"telmesh/internal/domain/plan"
	"telmesh/internal/domain/user"
	"telmesh/internal/shared/errors"
	"telmesh/internal/shared/logger"
)

type Service struct {
	feedbackRepo feedback.Repository
	userRepo     user.Repository
	planRepo     plan.Repository
	logger       logger.Interface
}

func NewService(
	feedbackRepo feedback.Repository,
	userRepo user.Repository,
	planRepo plan.Repository,
	log logger.Interface,
) *Service {
	return &Service{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
		planRepo:     planRepo,
		logger:       log,
	}
}

// Create stores feedback from a user about a plan.
func (s *Service) Create(ctx context.Context, text string, rating int, submittedDate time.Time, userID, planID uint) (*feedback.Feedback, error) {
	s.logger.Infow("creating feedback", "user_id", userID, "plan_id", planID)

	if err := feedback.Validate(text, rating); err != nil {
		s.logger.Errorw("invalid feedback", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return nil, err
	}

	newFeedback, err := feedback.NewFeedback(text, rating, submittedDate, userID, planID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.feedbackRepo.Save(ctx, newFeedback); err != nil {
		s.logger.Errorw("failed to save feedback", "error", err)
		return nil, err
	}

	s.logger.Infow("feedback created", "feedback_id", newFeedback.ID(), "rating", rating)
	return newFeedback, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*feedback.Feedback, error) {
	return s.feedbackRepo.FindByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]*feedback.Feedback, error) {
	return s.feedbackRepo.FindAll(ctx)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]*feedback.Feedback, int64, error) {
	return s.feedbackRepo.List(ctx, offset, limit)
}

func (s *Service) Exists(ctx context.Context, id uint) (bool, error) {
	return s.feedbackRepo.ExistsByID(ctx, id)
}

// Update replaces the feedback content. The same validation as Create
// runs before the store is touched.
func (s *Service) Update(ctx context.Context, id uint, text string, rating int, submittedDate time.Time, userID, planID uint) (*feedback.Feedback, error) {
	if err := feedback.Validate(text, rating); err != nil {
		s.logger.Errorw("invalid feedback", "feedback_id", id, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := s.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return nil, err
	}

	if err := existing.Update(text, rating, submittedDate, userID, planID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.feedbackRepo.Save(ctx, existing); err != nil {
		s.logger.Errorw("failed to update feedback", "feedback_id", id, "error", err)
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.feedbackRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("feedback deleted", "feedback_id", id)
	return nil
}

func (s *Service) FindByRating(ctx context.Context, rating int) ([]*feedback.Feedback, error) {
	if rating < feedback.MinRating || rating > feedback.MaxRating {
		return nil, errors.NewValidationError("rating must be between 1 and 5")
	}
	return s.feedbackRepo.FindByRating(ctx, rating)
}

func (s *Service) FindByRatingBetween(ctx context.Context, min, max int) ([]*feedback.Feedback, error) {
	if min > max {
		return nil, errors.NewValidationError("minimum rating must not exceed maximum rating")
	}
	return s.feedbackRepo.FindByRatingBetween(ctx, min, max)
}

func (s *Service) FindByUser(ctx context.Context, userID uint) ([]*feedback.Feedback, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.feedbackRepo.FindByUserID(ctx, userID)
}

func (s *Service) FindByPlan(ctx context.Context, planID uint) ([]*feedback.Feedback, error) {
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return nil, err
	}
	return s.feedbackRepo.FindByPlanID(ctx, planID)
}
