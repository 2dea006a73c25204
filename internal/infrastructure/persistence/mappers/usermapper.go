package mappers

import (
	"courtside/internal/domain/user"
	"courtside/internal/infrastructure/persistence/models"
)

// UserMapper converts user projections to domain entities. There is no
// ToModel direction: this service never writes to the users table.
type UserMapper interface {
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	avatarURL := ""
	if model.AvatarURL != nil {
		avatarURL = *model.AvatarURL
	}
	return user.ReconstructUser(model.ID, model.SID, model.Username, avatarURL, model.Moderator)
}
