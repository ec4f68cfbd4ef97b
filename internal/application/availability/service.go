// Package availability implements the application service for service
// availability windows and their links to plans and network statuses.
package availability

import (
	"context"
	"time"

	"telmesh/internal/domain/availability"
	"telmesh/internal/domain/network"
	"telmesh/internal/domain/plan"
	"telmesh/internal/shared/errors"
	"telmesh/internal/shared/logger"
)

type Service struct {
	availabilityRepo availability.Repository
	planRepo         plan.Repository
	networkRepo      network.Repository
	logger           logger.Interface
}

func NewService(
	availabilityRepo availability.Repository,
	planRepo plan.Repository,
	networkRepo network.Repository,
	log logger.Interface,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		planRepo:         planRepo,
		networkRepo:      networkRepo,
		logger:           log,
	}
}

func (s *Service) Create(ctx context.Context, status string, date time.Time) (*availability.Availability, error) {
	s.logger.Infow("creating availability", "status", status)

	newAvailability, err := availability.NewAvailability(status, date)
	if err != nil {
		s.logger.Errorw("invalid availability data", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.availabilityRepo.Save(ctx, newAvailability); err != nil {
		s.logger.Errorw("failed to save availability", "error", err)
		return nil, err
	}

	s.logger.Infow("availability created", "availability_id", newAvailability.ID())
	return newAvailability, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*availability.Availability, error) {
	return s.availabilityRepo.FindByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]*availability.Availability, error) {
	return s.availabilityRepo.FindAll(ctx)
}

// ListSortedByDate returns every window ordered by availability date.
func (s *Service) ListSortedByDate(ctx context.Context) ([]*availability.Availability, error) {
	return s.availabilityRepo.FindAllSortedByDate(ctx)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]*availability.Availability, int64, error) {
	return s.availabilityRepo.List(ctx, offset, limit)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.availabilityRepo.Count(ctx)
}

func (s *Service) Exists(ctx context.Context, id uint) (bool, error) {
	return s.availabilityRepo.ExistsByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uint, status string, date time.Time) (*availability.Availability, error) {
	existing, err := s.availabilityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := existing.Update(status, date); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.availabilityRepo.Save(ctx, existing); err != nil {
		s.logger.Errorw("failed to update availability", "availability_id", id, "error", err)
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.availabilityRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("availability deleted", "availability_id", id)
	return nil
}

// DeleteByStatus removes every window carrying the given status and
// returns how many were removed.
func (s *Service) DeleteByStatus(ctx context.Context, status string) (int64, error) {
	deleted, err := s.availabilityRepo.DeleteByStatus(ctx, status)
	if err != nil {
		return 0, err
	}
	s.logger.Infow("availabilities deleted by status", "status", status, "count", deleted)
	return deleted, nil
}

func (s *Service) FindByStatus(ctx context.Context, status string) ([]*availability.Availability, error) {
	return s.availabilityRepo.FindByStatus(ctx, status)
}

func (s *Service) FindByDateBetween(ctx context.Context, start, end time.Time) ([]*availability.Availability, error) {
	return s.availabilityRepo.FindByDateBetween(ctx, start, end)
}

// AddPlan links a service plan to the window.
func (s *Service) AddPlan(ctx context.Context, availabilityID, planID uint) error {
	if _, err := s.availabilityRepo.FindByID(ctx, availabilityID); err != nil {
		return err
	}
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return err
	}

	if err := s.planRepo.AddAvailability(ctx, planID, availabilityID); err != nil {
		return err
	}

	s.logger.Infow("plan linked to availability", "availability_id", availabilityID, "plan_id", planID)
	return nil
}

// RemovePlan unlinks a service plan from the window.
func (s *Service) RemovePlan(ctx context.Context, availabilityID, planID uint) error {
	if _, err := s.availabilityRepo.FindByID(ctx, availabilityID); err != nil {
		return err
	}

	linked, err := s.planRepo.HasAvailability(ctx, planID, availabilityID)
	if err != nil {
		return err
	}
	if !linked {
		return errors.NewNotFoundError("plan is not linked to availability")
	}

	if err := s.planRepo.RemoveAvailability(ctx, planID, availabilityID); err != nil {
		return err
	}

	s.logger.Infow("plan unlinked from availability", "availability_id", availabilityID, "plan_id", planID)
	return nil
}

// Plans lists the service plans linked to the window.
func (s *Service) Plans(ctx context.Context, availabilityID uint) ([]*plan.Plan, error) {
	if _, err := s.availabilityRepo.FindByID(ctx, availabilityID); err != nil {
		return nil, err
	}

	ids, err := s.availabilityRepo.PlanIDs(ctx, availabilityID)
	if err != nil {
		return nil, err
	}

	result := make([]*plan.Plan, 0, len(ids))
	for _, id := range ids {
		p, err := s.planRepo.FindByID(ctx, id)
		if err != nil {
			if errors.IsNotFoundError(err) {
				continue
			}
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

// AddNetworkStatus links a network status report to the window.
func (s *Service) AddNetworkStatus(ctx context.Context, availabilityID, statusID uint) error {
	if _, err := s.availabilityRepo.FindByID(ctx, availabilityID); err != nil {
		return err
	}
	if _, err := s.networkRepo.FindByID(ctx, statusID); err != nil {
		return err
	}

	if err := s.networkRepo.AddAvailability(ctx, statusID, availabilityID); err != nil {
		return err
	}

	s.logger.Infow("network status linked to availability", "availability_id", availabilityID, "status_id", statusID)
	return nil
}

// RemoveNetworkStatus unlinks a network status report from the window.
func (s *Service) RemoveNetworkStatus(ctx context.Context, availabilityID, statusID uint) error {
	if _, err := s.availabilityRepo.FindByID(ctx, availabilityID); err != nil {
		return err
	}

	linked, err := s.networkRepo.HasAvailability(ctx, statusID, availabilityID)
	if err != nil {
		return err
	}
	if !linked {
		return errors.NewNotFoundError("network status is not linked to availability")
	}

	if err := s.networkRepo.RemoveAvailability(ctx, statusID, availabilityID); err != nil {
		return err
	}

	s.logger.Infow("network status unlinked from availability", "availability_id", availabilityID, "status_id", statusID)
	return nil
}

// NetworkStatuses lists the status reports linked to the window.
func (s *Service) NetworkStatuses(ctx context.Context, availabilityID uint) ([]*network.Status, error) {
	if _, err := s.availabilityRepo.FindByID(ctx, availabilityID); err != nil {
		return nil, err
	}
	return s.networkRepo.FindByAvailabilityID(ctx, availabilityID)
}
