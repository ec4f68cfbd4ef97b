package mappers

import (
	"telmesh/internal/domain/order"
	"telmesh/internal/infrastructure/persistence/models"
)

func OrderToModel(o *order.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:            o.ID(),
		OrderDate:     toMilli(o.OrderDate()),
		TotalAmount:   o.TotalAmount(),
		UserID:        o.UserID(),
		ServicePlanID: o.PlanID(),
		Version:       o.Version(),
		CreatedAt:     toMilli(o.CreatedAt()),
		UpdatedAt:     toMilli(o.UpdatedAt()),
	}
}

func OrderToDomain(m *models.OrderModel) (*order.Order, error) {
	return order.ReconstructOrder(
		m.ID,
		fromMilli(m.OrderDate),
		m.TotalAmount,
		m.UserID,
		m.ServicePlanID,
		fromMilli(m.CreatedAt),
		fromMilli(m.UpdatedAt),
		m.Version,
	)
}

func OrdersToDomain(ms []models.OrderModel) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(ms))
	for i := range ms {
		o, err := OrderToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
