package service

import (
	"errors"
	"solidusers/cmd/internal/contract"
	"solidusers/cmd/internal/domain/policy"
	"solidusers/cmd/internal/domain/store"
	"solidusers/cmd/internal/utils"
	"solidusers/cmd/internal/utils/apierror"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type CreateUserService struct {
	UserRepo   UserRepository
	Validate   *validator.Validate
	UserPolicy *policy.UserPolicy

	// mu serializes the email lookup and the insert.
	mu  sync.Mutex
	now func() int64
}

func NewCreateUserService(userRepo UserRepository, validate *validator.Validate, userPolicy *policy.UserPolicy) *CreateUserService {
	return &CreateUserService{
		UserRepo:   userRepo,
		Validate:   validate,
		UserPolicy: userPolicy,
		now:        utils.NowUTC,
	}
}

// Execute registers a new, non-admin user. It fails with
// apierror.UserAlreadyExistsError when the email is taken.
func (s *CreateUserService) Execute(req *contract.CreateUserRequest) (*contract.UserResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		if apierr := apierror.FromValidationError(err); apierr != nil {
			return nil, apierr
		}
		log.Errorf("failed to validate create user request: %v", err)
		return nil, apierror.InternalServerError
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found, err := s.UserRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check if user (%s) already exists: %v", req.Email, err)
		return nil, apierror.InternalServerError
	}

	if found != nil {
		return nil, apierror.UserAlreadyExistsError
	}

	user := s.UserPolicy.NewUser(uuid.NewString(), req.Name, req.Email, s.now())

	err = s.UserRepo.Insert(user)
	if errors.Is(err, store.ErrDuplicateEmail) {
		return nil, apierror.UserAlreadyExistsError
	}

	if err != nil {
		log.Errorf("failed to create user (%s): %v", req.Email, err)
		return nil, apierror.InternalServerError
	}

	log.Debugf("created user %s", user.ID)
	return toUserResponse(user), nil
}
