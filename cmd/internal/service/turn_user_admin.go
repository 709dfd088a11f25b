package service

import (
	"errors"
	"solidusers/cmd/internal/contract"
	"solidusers/cmd/internal/domain/policy"
	"solidusers/cmd/internal/domain/store"
	"solidusers/cmd/internal/utils"
	"solidusers/cmd/internal/utils/apierror"
	"sync"

	"github.com/labstack/gommon/log"
)

type TurnUserAdminService struct {
	UserRepo   UserRepository
	UserPolicy *policy.UserPolicy

	mu  sync.Mutex
	now func() int64
}

func NewTurnUserAdminService(userRepo UserRepository, userPolicy *policy.UserPolicy) *TurnUserAdminService {
	return &TurnUserAdminService{
		UserRepo:   userRepo,
		UserPolicy: userPolicy,
		now:        utils.NowUTC,
	}
}

// Execute promotes the user to administrator. Promoting an admin again
// only refreshes its update time, there is no way back to a regular user.
func (s *TurnUserAdminService) Execute(req *contract.TurnUserAdminRequest) (*contract.UserResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if req.UserID == "" {
		return nil, apierror.NewMissingParamError("user_id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.UserRepo.FindByID(req.UserID)
	if err != nil {
		log.Errorf("failed to find user (%s) by id: %v", req.UserID, err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.UserNotFoundError
	}

	promoted := s.UserPolicy.PromoteToAdmin(user, s.now())

	err = s.UserRepo.Save(user)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, apierror.UserNotFoundError
	}

	if err != nil {
		log.Errorf("failed to turn user (%s) admin: %v", user.ID, err)
		return nil, apierror.InternalServerError
	}

	if promoted {
		log.Infof("user %s is now an administrator", user.ID)
	}
	return toUserResponse(user), nil
}
