package mappers

import (
	"telmesh/internal/domain/availability"
	"telmesh/internal/infrastructure/persistence/models"
)

func AvailabilityToModel(a *availability.Availability) *models.ServiceAvailabilityModel {
	return &models.ServiceAvailabilityModel{
		ID:                 a.ID(),
		AvailabilityStatus: a.Status(),
		AvailabilityDate:   toMilli(a.AvailabilityDate()),
		Version:            a.Version(),
		CreatedAt:          toMilli(a.CreatedAt()),
		UpdatedAt:          toMilli(a.UpdatedAt()),
	}
}

func AvailabilityToDomain(m *models.ServiceAvailabilityModel) (*availability.Availability, error) {
	return availability.ReconstructAvailability(
		m.ID,
		m.AvailabilityStatus,
		fromMilli(m.AvailabilityDate),
		fromMilli(m.CreatedAt),
		fromMilli(m.UpdatedAt),
		m.Version,
	)
}

func AvailabilitiesToDomain(ms []models.ServiceAvailabilityModel) ([]*availability.Availability, error) {
	availabilities := make([]*availability.Availability, 0, len(ms))
	for i := range ms {
		a, err := AvailabilityToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		availabilities = append(availabilities, a)
	}
	return availabilities, nil
}
