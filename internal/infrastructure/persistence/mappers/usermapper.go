package mappers

import (
	"telmesh/internal/domain/user"
	"telmesh/internal/infrastructure/persistence/models"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		RegionID:     u.RegionID(),
		Version:      u.Version(),
		CreatedAt:    toMilli(u.CreatedAt()),
		UpdatedAt:    toMilli(u.UpdatedAt()),
	}
}

func UserToDomain(m *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		m.ID,
		m.Username,
		m.Email,
		m.PasswordHash,
		user.Role(m.Role),
		m.RegionID,
		fromMilli(m.CreatedAt),
		fromMilli(m.UpdatedAt),
		m.Version,
	)
}

func UsersToDomain(ms []models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, 0, len(ms))
	for i := range ms {
		u, err := UserToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
