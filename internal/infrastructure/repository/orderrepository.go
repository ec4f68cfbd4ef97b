package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"telmesh/internal/domain/order"
	"telmesh/internal/infrastructure/persistence/mappers"
	"telmesh/internal/infrastructure/persistence/models"
	apperrors "telmesh/internal/shared/errors"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	model := mappers.OrderToModel(o)

	if model.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return o.SetID(model.ID)
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("order not found", fmt.Sprintf("id=%d", id))
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return mappers.OrderToDomain(&model)
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	var orderModels []models.OrderModel
	if err := r.db.WithContext(ctx).Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return mappers.OrdersToDomain(orderModels)
}

func (r *OrderRepository) List(ctx context.Context, offset, limit int) ([]*order.Order, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.OrderModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var orderModels []models.OrderModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders, err := mappers.OrdersToDomain(orderModels)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check order existence: %w", err)
	}
	return count > 0, nil
}

// DeleteByID removes the order and its payments.
func (r *OrderRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.OrderModel
		if err := tx.First(&model, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.NewNotFoundError("order not found", fmt.Sprintf("id=%d", id))
			}
			return fmt.Errorf("failed to load order: %w", err)
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.PaymentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete order payments: %w", err)
		}
		if err := tx.Delete(&models.OrderModel{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		return nil
	})
}

func (r *OrderRepository) FindByUserID(ctx context.Context, userID uint) ([]*order.Order, error) {
	var orderModels []models.OrderModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders by user: %w", err)
	}
	return mappers.OrdersToDomain(orderModels)
}

func (r *OrderRepository) FindByPlanID(ctx context.Context, planID uint) ([]*order.Order, error) {
	var orderModels []models.OrderModel
	if err := r.db.WithContext(ctx).
		Where("service_plan_id = ?", planID).
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders by plan: %w", err)
	}
	return mappers.OrdersToDomain(orderModels)
}

func (r *OrderRepository) FindByOrderDateBetween(ctx context.Context, start, end time.Time) ([]*order.Order, error) {
	var orderModels []models.OrderModel
	if err := r.db.WithContext(ctx).
		Where("order_date BETWEEN ? AND ?", start.UnixMilli(), end.UnixMilli()).
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders by date range: %w", err)
	}
	return mappers.OrdersToDomain(orderModels)
}
