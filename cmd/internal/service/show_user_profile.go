package service

import (
	"solidusers/cmd/internal/contract"
	"solidusers/cmd/internal/utils"
	"solidusers/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type ShowUserProfileService struct {
	UserRepo UserRepository
}

func NewShowUserProfileService(userRepo UserRepository) *ShowUserProfileService {
	return &ShowUserProfileService{UserRepo: userRepo}
}

func (s *ShowUserProfileService) Execute(req *contract.ShowUserProfileRequest) (*contract.UserResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if req.UserID == "" {
		return nil, apierror.NewMissingParamError("user_id")
	}

	user, err := s.UserRepo.FindByID(req.UserID)
	if err != nil {
		log.Errorf("failed to find user (%s) by id: %v", req.UserID, err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.UserNotFoundError
	}
	return toUserResponse(user), nil
}
