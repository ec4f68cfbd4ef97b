package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"telmesh/internal/domain/payment"
	"telmesh/internal/infrastructure/persistence/mappers"
	"telmesh/internal/infrastructure/persistence/models"
	apperrors "telmesh/internal/shared/errors"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	model := mappers.PaymentToModel(p)

	if model.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
		return p.SetID(model.ID)
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uint) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("payment not found", fmt.Sprintf("id=%d", id))
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return mappers.PaymentToDomain(&model)
}

func (r *PaymentRepository) FindAll(ctx context.Context) ([]*payment.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return mappers.PaymentsToDomain(paymentModels)
}

func (r *PaymentRepository) List(ctx context.Context, offset, limit int) ([]*payment.Payment, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.PaymentModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&paymentModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	payments, err := mappers.PaymentsToDomain(paymentModels)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (r *PaymentRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check payment existence: %w", err)
	}
	return count > 0, nil
}

func (r *PaymentRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PaymentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("payment not found", fmt.Sprintf("id=%d", id))
	}
	return nil
}

func (r *PaymentRepository) FindByUserID(ctx context.Context, userID uint) ([]*payment.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find payments by user: %w", err)
	}
	return mappers.PaymentsToDomain(paymentModels)
}

func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID uint) ([]*payment.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find payments by order: %w", err)
	}
	return mappers.PaymentsToDomain(paymentModels)
}

func (r *PaymentRepository) FindByPaymentDateBetween(ctx context.Context, start, end time.Time) ([]*payment.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("payment_date BETWEEN ? AND ?", start.UnixMilli(), end.UnixMilli()).
		Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find payments by date range: %w", err)
	}
	return mappers.PaymentsToDomain(paymentModels)
}

func (r *PaymentRepository) FindByAmountBetween(ctx context.Context, min, max float64) ([]*payment.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("amount BETWEEN ? AND ?", min, max).
		Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find payments by amount range: %w", err)
	}
	return mappers.PaymentsToDomain(paymentModels)
}
