package service

import (
	"solidusers/cmd/internal/contract"
	"solidusers/cmd/internal/domain/entity"
	"solidusers/cmd/internal/utils"
)

// UserRepository is the storage contract shared by every user use case.
// Finders return (nil, nil) when nothing matches.
type UserRepository interface {
	Insert(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	FindAll() ([]*entity.User, error)
	Save(user *entity.User) error
}

func toUserResponse(user *entity.User) *contract.UserResponse {
	return &contract.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Admin:     user.Admin,
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
		UpdatedAt: utils.FormatEpoch(user.UpdatedAt),
	}
}
