package mappers

import (
	"telmesh/internal/domain/network"
	"telmesh/internal/infrastructure/persistence/models"
)

func NetworkStatusToModel(s *network.Status) *models.NetworkStatusModel {
	return &models.NetworkStatusModel{
		ID:         s.ID(),
		Status:     s.StatusValue(),
		UpdateDate: toMilli(s.UpdateDate()),
		RegionID:   s.RegionID(),
		Version:    s.Version(),
		CreatedAt:  toMilli(s.CreatedAt()),
		UpdatedAt:  toMilli(s.UpdatedAt()),
	}
}

func NetworkStatusToDomain(m *models.NetworkStatusModel) (*network.Status, error) {
	return network.ReconstructStatus(
		m.ID,
		m.Status,
		fromMilli(m.UpdateDate),
		m.RegionID,
		fromMilli(m.CreatedAt),
		fromMilli(m.UpdatedAt),
		m.Version,
	)
}

func NetworkStatusesToDomain(ms []models.NetworkStatusModel) ([]*network.Status, error) {
	statuses := make([]*network.Status, 0, len(ms))
	for i := range ms {
		s, err := NetworkStatusToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}
