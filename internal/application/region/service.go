// Package region implements the application service for coverage
// regions, including placement of users and network statuses.
package region

import (
	"context"

	"telmesh/internal/domain/network"
	"telmesh/internal/domain/region"
	"telmesh/internal/domain/user"
	"telmesh/internal/shared/errors"
	"telmesh/internal/shared/logger"
)

type Service struct {
	regionRepo  region.Repository
	userRepo    user.Repository
	networkRepo network.Repository
	logger      logger.Interface
}

func NewService(regionRepo region.Repository, userRepo user.Repository, networkRepo network.Repository, log logger.Interface) *Service {
	return &Service{
		regionRepo:  regionRepo,
		userRepo:    userRepo,
		networkRepo: networkRepo,
		logger:      log,
	}
}

func (s *Service) Create(ctx context.Context, name, description string) (*region.Region, error) {
	s.logger.Infow("creating region", "name", name)

	newRegion, err := region.NewRegion(name, description)
	if err != nil {
		s.logger.Errorw("invalid region data", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.regionRepo.Save(ctx, newRegion); err != nil {
		s.logger.Errorw("failed to save region", "error", err)
		return nil, err
	}

	s.logger.Infow("region created", "region_id", newRegion.ID(), "name", newRegion.Name())
	return newRegion, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*region.Region, error) {
	return s.regionRepo.FindByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]*region.Region, error) {
	return s.regionRepo.FindAll(ctx)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]*region.Region, int64, error) {
	return s.regionRepo.List(ctx, offset, limit)
}

func (s *Service) Exists(ctx context.Context, id uint) (bool, error) {
	return s.regionRepo.ExistsByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uint, name, description string) (*region.Region, error) {
	existing, err := s.regionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := existing.Update(name, description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.regionRepo.Save(ctx, existing); err != nil {
		s.logger.Errorw("failed to update region", "region_id", id, "error", err)
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.regionRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("region deleted", "region_id", id)
	return nil
}

func (s *Service) SearchByName(ctx context.Context, name string) ([]*region.Region, error) {
	return s.regionRepo.SearchByName(ctx, name)
}

func (s *Service) SearchByDescription(ctx context.Context, description string) ([]*region.Region, error) {
	return s.regionRepo.SearchByDescription(ctx, description)
}

// AddUser places a user into the region. A user lives in at most one
// region; adding moves them from any previous one.
func (s *Service) AddUser(ctx context.Context, regionID, userID uint) error {
	if _, err := s.regionRepo.FindByID(ctx, regionID); err != nil {
		return err
	}
	existing, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := existing.AssignRegion(regionID); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := s.userRepo.Save(ctx, existing); err != nil {
		s.logger.Errorw("failed to place user in region", "region_id", regionID, "user_id", userID, "error", err)
		return err
	}

	s.logger.Infow("user added to region", "region_id", regionID, "user_id", userID)
	return nil
}

// RemoveUser detaches a user from the region. The user must currently
// live in this region.
func (s *Service) RemoveUser(ctx context.Context, regionID, userID uint) error {
	if _, err := s.regionRepo.FindByID(ctx, regionID); err != nil {
		return err
	}
	existing, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if existing.RegionID() == nil || *existing.RegionID() != regionID {
		return errors.NewNotFoundError("user is not in region")
	}

	existing.ClearRegion()
	if err := s.userRepo.Save(ctx, existing); err != nil {
		s.logger.Errorw("failed to detach user from region", "region_id", regionID, "user_id", userID, "error", err)
		return err
	}

	s.logger.Infow("user removed from region", "region_id", regionID, "user_id", userID)
	return nil
}

// Users lists the users living in the region.
func (s *Service) Users(ctx context.Context, regionID uint) ([]*user.User, error) {
	if _, err := s.regionRepo.FindByID(ctx, regionID); err != nil {
		return nil, err
	}
	return s.userRepo.FindByRegionID(ctx, regionID)
}

// AddNetworkStatus attaches a network status report to the region.
func (s *Service) AddNetworkStatus(ctx context.Context, regionID, statusID uint) error {
	if _, err := s.regionRepo.FindByID(ctx, regionID); err != nil {
		return err
	}
	status, err := s.networkRepo.FindByID(ctx, statusID)
	if err != nil {
		return err
	}

	if err := status.AssignRegion(regionID); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := s.networkRepo.Save(ctx, status); err != nil {
		s.logger.Errorw("failed to attach network status", "region_id", regionID, "status_id", statusID, "error", err)
		return err
	}

	s.logger.Infow("network status added to region", "region_id", regionID, "status_id", statusID)
	return nil
}

// RemoveNetworkStatus detaches a network status report from the region.
func (s *Service) RemoveNetworkStatus(ctx context.Context, regionID, statusID uint) error {
	if _, err := s.regionRepo.FindByID(ctx, regionID); err != nil {
		return err
	}
	status, err := s.networkRepo.FindByID(ctx, statusID)
	if err != nil {
		return err
	}

	if status.RegionID() == nil || *status.RegionID() != regionID {
		return errors.NewNotFoundError("network status is not in region")
	}

	status.ClearRegion()
	if err := s.networkRepo.Save(ctx, status); err != nil {
		s.logger.Errorw("failed to detach network status", "region_id", regionID, "status_id", statusID, "error", err)
		return err
	}

	s.logger.Infow("network status removed from region", "region_id", regionID, "status_id", statusID)
	return nil
}

// NetworkStatuses lists the status reports attached to the region.
func (s *Service) NetworkStatuses(ctx context.Context, regionID uint) ([]*network.Status, error) {
	if _, err := s.regionRepo.FindByID(ctx, regionID); err != nil {
		return nil, err
	}
	return s.networkRepo.FindByRegionID(ctx, regionID)
}
