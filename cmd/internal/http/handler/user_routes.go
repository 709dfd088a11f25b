package handler

import (
	"net/http"
	"solidusers/cmd/internal/contract"
	"solidusers/cmd/internal/utils/apierror"
	"strings"

	"github.com/labstack/echo/v4"
)

type CreateUserService interface {
	Execute(req *contract.CreateUserRequest) (*contract.UserResponse, apierror.ErrorResponse)
}

type ListAllUsersService interface {
	Execute() ([]*contract.UserResponse, apierror.ErrorResponse)
}

type ShowUserProfileService interface {
	Execute(req *contract.ShowUserProfileRequest) (*contract.UserResponse, apierror.ErrorResponse)
}

type TurnUserAdminService interface {
	Execute(req *contract.TurnUserAdminRequest) (*contract.UserResponse, apierror.ErrorResponse)
}

type DefaultUserRoute struct {
	CreateUser      CreateUserService
	ListAllUsers    ListAllUsersService
	ShowUserProfile ShowUserProfileService
	TurnUserAdmin   TurnUserAdminService
}

func NewUserDefault(create CreateUserService, list ListAllUsersService, show ShowUserProfileService, turnAdmin TurnUserAdminService) *DefaultUserRoute {
	return &DefaultUserRoute{
		CreateUser:      create,
		ListAllUsers:    list,
		ShowUserProfile: show,
		TurnUserAdmin:   turnAdmin,
	}
}

// Register mounts the user routes under /users.
func (u *DefaultUserRoute) Register(e *echo.Echo) {
	g := e.Group("/users")
	g.POST("", u.PostUser)
	g.GET("", u.GetUsers)
	g.GET("/:user_id", u.GetUser)
	g.PATCH("/:user_id/admin", u.PatchUserAdmin)
}

func (u *DefaultUserRoute) PostUser(c echo.Context) error {
	var req contract.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	user, apierr := u.CreateUser.Execute(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, user)
}

func (u *DefaultUserRoute) GetUsers(c echo.Context) error {
	users, apierr := u.ListAllUsers.Execute()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, users)
}

func (u *DefaultUserRoute) GetUser(c echo.Context) error {
	userId := strings.TrimSpace(c.Param("user_id"))
	if userId == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("user_id"))
	}

	user, apierr := u.ShowUserProfile.Execute(&contract.ShowUserProfileRequest{UserID: userId})
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, user)
}

func (u *DefaultUserRoute) PatchUserAdmin(c echo.Context) error {
	userId := strings.TrimSpace(c.Param("user_id"))
	if userId == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("user_id"))
	}

	user, apierr := u.TurnUserAdmin.Execute(&contract.TurnUserAdminRequest{UserID: userId})
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, user)
}
