package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"telmesh/internal/domain/ticket"
	"telmesh/internal/infrastructure/persistence/mappers"
	"telmesh/internal/infrastructure/persistence/models"
	apperrors "telmesh/internal/shared/errors"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := mappers.TicketToModel(t)

	if model.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create ticket: %w", err)
		}
		return t.SetID(model.ID)
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.SupportTicketModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("ticket not found", fmt.Sprintf("id=%d", id))
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return mappers.TicketToDomain(&model)
}

func (r *TicketRepository) FindAll(ctx context.Context) ([]*ticket.Ticket, error) {
	var ticketModels []models.SupportTicketModel
	if err := r.db.WithContext(ctx).Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return mappers.TicketsToDomain(ticketModels)
}

func (r *TicketRepository) List(ctx context.Context, offset, limit int) ([]*ticket.Ticket, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.SupportTicketModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var ticketModels []models.SupportTicketModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := mappers.TicketsToDomain(ticketModels)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *TicketRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SupportTicketModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ticket existence: %w", err)
	}
	return count > 0, nil
}

func (r *TicketRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.SupportTicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found", fmt.Sprintf("id=%d", id))
	}
	return nil
}

func (r *TicketRepository) FindByStatus(ctx context.Context, status string) ([]*ticket.Ticket, error) {
	var ticketModels []models.SupportTicketModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find tickets by status: %w", err)
	}
	return mappers.TicketsToDomain(ticketModels)
}

func (r *TicketRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SupportTicketModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by status: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) FindByUserID(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
	var ticketModels []models.SupportTicketModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find tickets by user: %w", err)
	}
	return mappers.TicketsToDomain(ticketModels)
}

func (r *TicketRepository) FindByCreatedDateBetween(ctx context.Context, start, end time.Time) ([]*ticket.Ticket, error) {
	var ticketModels []models.SupportTicketModel
	if err := r.db.WithContext(ctx).
		Where("created_date BETWEEN ? AND ?", start.UnixMilli(), end.UnixMilli()).
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find tickets by date range: %w", err)
	}
	return mappers.TicketsToDomain(ticketModels)
}

func (r *TicketRepository) SearchByIssueDescription(ctx context.Context, query string) ([]*ticket.Ticket, error) {
	var ticketModels []models.SupportTicketModel
	pattern := "%" + strings.ToLower(query) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(issue_description) LIKE ?", pattern).
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to search tickets: %w", err)
	}
	return mappers.TicketsToDomain(ticketModels)
}
