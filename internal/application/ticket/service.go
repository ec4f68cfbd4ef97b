// Package ticket implements the application service for support
// tickets.
package ticket

import (
	"context"
	"time"

	"telmesh/internal/domain/ticket"
	"telmesh/internal/domain/user"
	"telmesh/internal/shared/errors"
	"telmesh/internal/shared/logger"
)

type Service struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewService(ticketRepo ticket.Repository, userRepo user.Repository, log logger.Interface) *Service {
	return &Service{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     log,
	}
}

// Create opens a support ticket for a user. The creation date is
// caller-supplied and immutable afterwards.
func (s *Service) Create(ctx context.Context, issueDescription, status string, createdDate time.Time, userID uint) (*ticket.Ticket, error) {
	s.logger.Infow("creating support ticket", "user_id", userID)

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	newTicket, err := ticket.NewTicket(issueDescription, status, createdDate, userID)
	if err != nil {
		s.logger.Errorw("invalid ticket data", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.ticketRepo.Save(ctx, newTicket); err != nil {
		s.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	s.logger.Infow("support ticket created", "ticket_id", newTicket.ID(), "user_id", userID)
	return newTicket, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return s.ticketRepo.FindByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	return s.ticketRepo.FindAll(ctx)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]*ticket.Ticket, int64, error) {
	return s.ticketRepo.List(ctx, offset, limit)
}

func (s *Service) Exists(ctx context.Context, id uint) (bool, error) {
	return s.ticketRepo.ExistsByID(ctx, id)
}

// Update replaces the description and status; the creation date is
// untouched.
func (s *Service) Update(ctx context.Context, id uint, issueDescription, status string) (*ticket.Ticket, error) {
	existing, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := existing.Update(issueDescription, status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.ticketRepo.Save(ctx, existing); err != nil {
		s.logger.Errorw("failed to update ticket", "ticket_id", id, "error", err)
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.ticketRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("support ticket deleted", "ticket_id", id)
	return nil
}

func (s *Service) FindByStatus(ctx context.Context, status string) ([]*ticket.Ticket, error) {
	return s.ticketRepo.FindByStatus(ctx, status)
}

func (s *Service) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.ticketRepo.CountByStatus(ctx, status)
}

func (s *Service) FindByUser(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.ticketRepo.FindByUserID(ctx, userID)
}

func (s *Service) FindByCreatedDateBetween(ctx context.Context, start, end time.Time) ([]*ticket.Ticket, error) {
	return s.ticketRepo.FindByCreatedDateBetween(ctx, start, end)
}

func (s *Service) SearchByIssueDescription(ctx context.Context, query string) ([]*ticket.Ticket, error) {
	return s.ticketRepo.SearchByIssueDescription(ctx, query)
}
