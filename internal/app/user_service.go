package app

import (
	"context"

	"talenttrack/internal/common"
	"talenttrack/internal/domain/user"
)

type UserService struct {
	repo user.Repository
}

func NewUserService(repo user.Repository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// CreateOrUpdate upserts the user record on login: names and avatars follow
// the identity provider, the email is the stable key.
func (s *UserService) CreateOrUpdate(ctx context.Context, email, fullName string, avatarURL *string, externalID string) (*user.User, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		existing.FullName = fullName
		if avatarURL != nil {
			existing.AvatarURL = avatarURL
		}
		return s.repo.Update(ctx, *existing)
	}
	if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	if externalID == "" {
		externalID = "dev_" + email
	}
	return s.repo.Create(ctx, user.User{
		Email:      email,
		ExternalID: externalID,
		FullName:   fullName,
		AvatarURL:  avatarURL,
	})
}
