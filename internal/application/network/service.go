// Package network implements the application service for regional
// network status reports, including the bulk status update used by
// operations tooling.
package network

import (
	"context"
	"time"

	"telmesh/internal/domain/availability"
	"telmesh/internal/domain/network"
	"telmesh/internal/domain/region"
	"telmesh/internal/shared/errors"
	"telmesh/internal/shared/logger"
)

type Service struct {
	networkRepo      network.Repository
	regionRepo       region.Repository
	availabilityRepo availability.Repository
	logger           logger.Interface
}

func NewService(
	networkRepo network.Repository,
	regionRepo region.Repository,
	availabilityRepo availability.Repository,
	log logger.Interface,
) *Service {
	return &Service{
		networkRepo:      networkRepo,
		regionRepo:       regionRepo,
		availabilityRepo: availabilityRepo,
		logger:           log,
	}
}

func (s *Service) Create(ctx context.Context, status string, updateDate time.Time, regionID uint) (*network.Status, error) {
	s.logger.Infow("creating network status", "region_id", regionID)

	if _, err := s.regionRepo.FindByID(ctx, regionID); err != nil {
		return nil, err
	}

	newStatus, err := network.NewStatus(status, updateDate, regionID)
	if err != nil {
		s.logger.Errorw("invalid network status data", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.networkRepo.Save(ctx, newStatus); err != nil {
		s.logger.Errorw("failed to save network status", "error", err)
		return nil, err
	}

	s.logger.Infow("network status created", "status_id", newStatus.ID(), "region_id", regionID)
	return newStatus, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*network.Status, error) {
	return s.networkRepo.FindByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]*network.Status, error) {
	return s.networkRepo.FindAll(ctx)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]*network.Status, int64, error) {
	return s.networkRepo.List(ctx, offset, limit)
}

func (s *Service) Exists(ctx context.Context, id uint) (bool, error) {
	return s.networkRepo.ExistsByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uint, status string, updateDate time.Time) (*network.Status, error) {
	existing, err := s.networkRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := existing.Update(status, updateDate); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.networkRepo.Save(ctx, existing); err != nil {
		s.logger.Errorw("failed to update network status", "status_id", id, "error", err)
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.networkRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("network status deleted", "status_id", id)
	return nil
}

func (s *Service) FindByRegion(ctx context.Context, regionID uint) ([]*network.Status, error) {
	if _, err := s.regionRepo.FindByID(ctx, regionID); err != nil {
		return nil, err
	}
	return s.networkRepo.FindByRegionID(ctx, regionID)
}

func (s *Service) FindByUpdateDateBetween(ctx context.Context, start, end time.Time) ([]*network.Status, error) {
	return s.networkRepo.FindByUpdateDateBetween(ctx, start, end)
}

// BulkUpdateStatus sets the same status value on every resolvable ID
// and returns the updated reports. IDs that do not resolve are skipped
// rather than failing the batch.
func (s *Service) BulkUpdateStatus(ctx context.Context, ids []uint, status string) ([]*network.Status, error) {
	statuses, err := s.networkRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, st := range statuses {
		if err := st.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if len(statuses) > 0 {
		if err := s.networkRepo.SaveAll(ctx, statuses); err != nil {
			s.logger.Errorw("failed to bulk update network statuses", "error", err)
			return nil, err
		}
	}

	if len(statuses) < len(ids) {
		s.logger.Warnw("bulk update skipped unresolved network statuses",
			"requested", len(ids), "updated", len(statuses))
	}
	s.logger.Infow("network statuses bulk updated", "count", len(statuses), "status", status)
	return statuses, nil
}

// AddAvailability links an availability window to the status report.
func (s *Service) AddAvailability(ctx context.Context, statusID, availabilityID uint) error {
	if _, err := s.networkRepo.FindByID(ctx, statusID); err != nil {
		return err
	}
	if _, err := s.availabilityRepo.FindByID(ctx, availabilityID); err != nil {
		return err
	}

	if err := s.networkRepo.AddAvailability(ctx, statusID, availabilityID); err != nil {
		return err
	}

	s.logger.Infow("availability linked to network status", "status_id", statusID, "availability_id", availabilityID)
	return nil
}

// RemoveAvailability unlinks an availability window from the report.
func (s *Service) RemoveAvailability(ctx context.Context, statusID, availabilityID uint) error {
	if _, err := s.networkRepo.FindByID(ctx, statusID); err != nil {
		return err
	}

	linked, err := s.networkRepo.HasAvailability(ctx, statusID, availabilityID)
	if err != nil {
		return err
	}
	if !linked {
		return errors.NewNotFoundError("availability is not linked to network status")
	}

	if err := s.networkRepo.RemoveAvailability(ctx, statusID, availabilityID); err != nil {
		return err
	}

	s.logger.Infow("availability unlinked from network status", "status_id", statusID, "availability_id", availabilityID)
	return nil
}

// Availabilities lists the windows linked to the report.
func (s *Service) Availabilities(ctx context.Context, statusID uint) ([]*availability.Availability, error) {
	if _, err := s.networkRepo.FindByID(ctx, statusID); err != nil {
		return nil, err
	}

	ids, err := s.networkRepo.AvailabilityIDs(ctx, statusID)
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
