package mappers

import (
	"telmesh/internal/domain/region"
	"telmesh/internal/infrastructure/persistence/models"
)

func RegionToModel(r *region.Region) *models.RegionModel {
	return &models.RegionModel{
		ID:          r.ID(),
		Name:        r.Name(),
		Description: r.Description(),
		Version:     r.Version(),
		CreatedAt:   toMilli(r.CreatedAt()),
		UpdatedAt:   toMilli(r.UpdatedAt()),
	}
}

func RegionToDomain(m *models.RegionModel) (*region.Region, error) {
	return region.ReconstructRegion(
		m.ID,
		m.Name,
		m.Description,
		fromMilli(m.CreatedAt),
		fromMilli(m.UpdatedAt),
		m.Version,
	)
}

func RegionsToDomain(ms []models.RegionModel) ([]*region.Region, error) {
	regions := make([]*region.Region, 0, len(ms))
	for i := range ms {
		r, err := RegionToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}
	return regions, nil
}
