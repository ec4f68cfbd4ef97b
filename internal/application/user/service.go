// Package user implements the application service for user accounts:
// lifecycle, credential handling, region placement, and service plan
// membership.
package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"telmesh/internal/domain/plan"
	"telmesh/internal/domain/user"
	"telmesh/internal/shared/errors"
	"telmesh/internal/shared/logger"
)

const minPasswordLength = 8

type Service struct {
	userRepo   user.Repository
	planRepo   plan.Repository
	bcryptCost int
	logger     logger.Interface
}

func NewService(userRepo user.Repository, planRepo plan.Repository, bcryptCost int, log logger.Interface) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:   userRepo,
		planRepo:   planRepo,
		bcryptCost: bcryptCost,
		logger:     log,
	}
}

// Register creates a user account with a freshly hashed password.
func (s *Service) Register(ctx context.Context, username, email, password string, role user.Role) (*user.User, error) {
	s.logger.Infow("registering user", "username", username)

	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}

	newUser, err := user.NewUser(username, email, hash, role)
	if err != nil {
		s.logger.Errorw("invalid user data", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.userRepo.Save(ctx, newUser); err != nil {
		s.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	s.logger.Infow("user registered", "user_id", newUser.ID(), "username", newUser.Username())
	return newUser, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*user.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]*user.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]*user.User, int64, error) {
	return s.userRepo.List(ctx, offset, limit)
}

func (s *Service) Exists(ctx context.Context, id uint) (bool, error) {
	return s.userRepo.ExistsByID(ctx, id)
}

func (s *Service) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.userRepo.ExistsByUsername(ctx, username)
}

func (s *Service) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.userRepo.ExistsByEmail(ctx, email)
}

// UpdateProfile replaces the user's username, email, and role.
func (s *Service) UpdateProfile(ctx context.Context, id uint, username, email string, role user.Role) (*user.User, error) {
	existing, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := existing.UpdateProfile(username, email, role); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.userRepo.Save(ctx, existing); err != nil {
		s.logger.Errorw("failed to update user", "user_id", id, "error", err)
		return nil, err
	}
	return existing, nil
}

// ChangePassword rehashes and stores a new password.
func (s *Service) ChangePassword(ctx context.Context, id uint, password string) error {
	existing, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}

	if err := existing.ChangePasswordHash(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := s.userRepo.Save(ctx, existing); err != nil {
		s.logger.Errorw("failed to change password", "user_id", id, "error", err)
		return err
	}

	s.logger.Infow("password changed", "user_id", id)
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash.
func (s *Service) VerifyPassword(ctx context.Context, id uint, password string) (bool, error) {
	existing, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash()), []byte(password))
	return err == nil, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.userRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("user deleted", "user_id", id)
	return nil
}

func (s *Service) SearchByUsername(ctx context.Context, query string) ([]*user.User, error) {
	return s.userRepo.SearchByUsername(ctx, query)
}

func (s *Service) FindByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role")
	}
	return s.userRepo.FindByRole(ctx, role)
}

// AssignPlan subscribes the user to a service plan. Both sides must
// exist; subscribing twice is a no-op.
func (s *Service) AssignPlan(ctx context.Context, userID, planID uint) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return err
	}

	if err := s.userRepo.AddPlanMembership(ctx, userID, planID); err != nil {
		return err
	}

	s.logger.Infow("plan assigned to user", "user_id", userID, "plan_id", planID)
	return nil
}

// RemovePlan unsubscribes the user from a service plan.
func (s *Service) RemovePlan(ctx context.Context, userID, planID uint) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
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

	s.logger.Infow("plan removed from user", "user_id", userID, "plan_id", planID)
	return nil
}

// PlansForUser lists the plans the user is subscribed to.
func (s *Service) PlansForUser(ctx context.Context, userID uint) ([]*plan.Plan, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.planRepo.FindByUserID(ctx, userID)
}

func (s *Service) hashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", errors.NewValidationError("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		s.logger.Errorw("failed to hash password", "error", err)
		return "", errors.NewInternalError("failed to hash password")
	}
	return string(hash), nil
}
