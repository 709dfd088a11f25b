package service

import (
	"solidusers/cmd/internal/contract"
	"solidusers/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type ListAllUsersService struct {
	UserRepo UserRepository
}

func NewListAllUsersService(userRepo UserRepository) *ListAllUsersService {
	return &ListAllUsersService{UserRepo: userRepo}
}

// Execute returns every user, oldest first. The slice is never nil.
func (s *ListAllUsersService) Execute() ([]*contract.UserResponse, apierror.ErrorResponse) {
	users, err := s.UserRepo.FindAll()
	if err != nil {
		log.Errorf("failed to list users: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.UserResponse, len(users))
	for i, user := range users {
		resp[i] = toUserResponse(user)
	}
	return resp, nil
}
