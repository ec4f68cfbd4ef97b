// Package plan implements the application service for service plans:
// catalog management, subscriber membership, availability links, and
// usage counters.
package plan

import (
	"context"

	"telmesh/internal/domain/availability"
	"telmesh/internal/domain/feedback"
	"telmesh/internal/domain/plan"
	"telmesh/internal/domain/user"
	"telmesh/internal/shared/errors"
	"telmesh/internal/shared/logger"
)

type Service struct {
	planRepo         plan.Repository
	userRepo         user.Repository
	availabilityRepo availability.Repository
	feedbackRepo     feedback.Repository
	logger           logger.Interface
}

func NewService(
	planRepo plan.Repository,
	userRepo user.Repository,
	availabilityRepo availability.Repository,
	feedbackRepo feedback.Repository,
	log logger.Interface,
) *Service {
	return &Service{
		planRepo:         planRepo,
		userRepo:         userRepo,
		availabilityRepo: availabilityRepo,
		feedbackRepo:     feedbackRepo,
		logger:           log,
	}
}

func (s *Service) Create(ctx context.Context, name, description string) (*plan.Plan, error) {
	s.logger.Infow("creating service plan", "name", name)

	newPlan, err := plan.NewPlan(name, description)
	if err != nil {
		s.logger.Errorw("invalid plan data", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.planRepo.Save(ctx, newPlan); err != nil {
		s.logger.Errorw("failed to save plan", "error", err)
		return nil, err
	}

	s.logger.Infow("service plan created", "plan_id", newPlan.ID(), "name", newPlan.Name())
	return newPlan, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*plan.Plan, error) {
	return s.planRepo.FindByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]*plan.Plan, error) {
	return s.planRepo.FindAll(ctx)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]*plan.Plan, int64, error) {
	return s.planRepo.List(ctx, offset, limit)
}

func (s *Service) Exists(ctx context.Context, id uint) (bool, error) {
	return s.planRepo.ExistsByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uint, name, description string) (*plan.Plan, error) {
	existing, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := existing.Update(name, description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.planRepo.Save(ctx, existing); err != nil {
		s.logger.Errorw("failed to update plan", "plan_id", id, "error", err)
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.planRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("service plan deleted", "plan_id", id)
	return nil
}

// Search matches name and description, case-insensitively.
func (s *Service) Search(ctx context.Context, query string) ([]*plan.Plan, error) {
	return s.planRepo.Search(ctx, query)
}

// AddUser subscribes a user to the plan.
func (s *Service) AddUser(ctx context.Context, planID, userID uint) error {
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return err
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepo.AddPlanMembership(ctx, userID, planID); err != nil {
		return err
	}

	s.logger.Infow("user subscribed to plan", "plan_id", planID, "user_id", userID)
	return nil
}

// RemoveUser unsubscribes a user from the plan.
func (s *Service) RemoveUser(ctx context.Context, planID, userID uint) error {
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return err
	}

	member, err := s.userRepo.HasPlanMembership(ctx, userID, planID)
	if err != nil {
		return err
	}
	if !member {
		return errors.NewNotFoundError("user is not subscribed to plan")
	}

	if err := s.userRepo.RemovePlanMembership(ctx, userID, planID); err != nil {
		return err
	}

	s.logger.Infow("user unsubscribed from plan", "plan_id", planID, "user_id", userID)
	return nil
}

// CountUsers returns the number of current subscribers.
func (s *Service) CountUsers(ctx context.Context, planID uint) (int64, error) {
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return 0, err
	}
	return s.planRepo.CountUsers(ctx, planID)
}

// CountOrders returns the number of orders placed for the plan.
func (s *Service) CountOrders(ctx context.Context, planID uint) (int64, error) {
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return 0, err
	}
	return s.planRepo.CountOrders(ctx, planID)
}

// Feedback lists the feedback submitted for the plan.
func (s *Service) Feedback(ctx context.Context, planID uint) ([]*feedback.Feedback, error) {
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return nil, err
	}
	return s.feedbackRepo.FindByPlanID(ctx, planID)
}

// AddAvailability links an availability window to the plan.
func (s *Service) AddAvailability(ctx context.Context, planID, availabilityID uint) error {
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return err
	}
	if _, err := s.availabilityRepo.FindByID(ctx, availabilityID); err != nil {
		return err
	}

	if err := s.planRepo.AddAvailability(ctx, planID, availabilityID); err != nil {
		return err
	}

	s.logger.Infow("availability linked to plan", "plan_id", planID, "availability_id", availabilityID)
	return nil
}

// RemoveAvailability unlinks an availability window from the plan.
func (s *Service) RemoveAvailability(ctx context.Context, planID, availabilityID uint) error {
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return err
	}

	linked, err := s.planRepo.HasAvailability(ctx, planID, availabilityID)
	if err != nil {
		return err
	}
	if !linked {
		return errors.NewNotFoundError("availability is not linked to plan")
	}

	if err := s.planRepo.RemoveAvailability(ctx, planID, availabilityID); err != nil {
		return err
	}

	s.logger.Infow("availability unlinked from plan", "plan_id", planID, "availability_id", availabilityID)
	return nil
}

// Availabilities lists the windows linked to the plan.
func (s *Service) Availabilities(ctx context.Context, planID uint) ([]*availability.Availability, error) {
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return nil, err
	}

	ids, err := s.planRepo.AvailabilityIDs(ctx, planID)
	if err != nil {
		return nil, err
	}

	result := make([]*availability.Availability, 0, len(ids))
	for _, id := range ids {
		a, err := s.availabilityRepo.FindByID(ctx, id)
		if err != nil {
			if errors.IsNotFoundError(err) {
				continue
			}
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}

// Users lists the subscribers of the plan.
func (s *Service) Users(ctx context.Context, planID uint) ([]*user.User, error) {
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return nil, err
	}

	return s.userRepo.FindByPlanID(ctx, planID)
}
