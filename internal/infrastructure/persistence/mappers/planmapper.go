package mappers

import (
	"telmesh/internal/domain/plan"
	"telmesh/internal/infrastructure/persistence/models"
)

func PlanToModel(p *plan.Plan) *models.ServicePlanModel {
	return &models.ServicePlanModel{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Version:     p.Version(),
		CreatedAt:   toMilli(p.CreatedAt()),
		UpdatedAt:   toMilli(p.UpdatedAt()),
	}
}

func PlanToDomain(m *models.ServicePlanModel) (*plan.Plan, error) {
	return plan.ReconstructPlan(
		m.ID,
		m.Name,
		m.Description,
		fromMilli(m.CreatedAt),
		fromMilli(m.UpdatedAt),
		m.Version,
	)
}

func PlansToDomain(ms []models.ServicePlanModel) ([]*plan.Plan, error) {
	plans := make([]*plan.Plan, 0, len(ms))
	for i := range ms {
		p, err := PlanToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}
