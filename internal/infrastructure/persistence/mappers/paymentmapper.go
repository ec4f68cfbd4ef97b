package mappers

import (
	"telmesh/internal/domain/payment"
	"telmesh/internal/infrastructure/persistence/models"
)

func PaymentToModel(p *payment.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:          p.ID(),
		Amount:      p.Amount(),
		PaymentDate: toMilli(p.PaymentDate()),
		UserID:      p.UserID(),
		OrderID:     p.OrderID(),
		Version:     p.Version(),
		CreatedAt:   toMilli(p.CreatedAt()),
		UpdatedAt:   toMilli(p.UpdatedAt()),
	}
}

func PaymentToDomain(m *models.PaymentModel) (*payment.Payment, error) {
	return payment.ReconstructPayment(
		m.ID,
		m.Amount,
		fromMilli(m.PaymentDate),
		m.UserID,
		m.OrderID,
		fromMilli(m.CreatedAt),
		fromMilli(m.UpdatedAt),
		m.Version,
	)
}

func PaymentsToDomain(ms []models.PaymentModel) ([]*payment.Payment, error) {
	payments := make([]*payment.Payment, 0, len(ms))
	for i := range ms {
		p, err := PaymentToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}
