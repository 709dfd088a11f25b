package repository

import (
	"errors"
	"gorm.io/gorm"
	"solidusers/cmd/internal/domain/entity"
	"solidusers/cmd/internal/domain/store"
	"strings"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

// FindAll returns every user in insertion order.
func (u *DefaultUserRepository) FindAll() ([]*entity.User, error) {
	var users []*entity.User
	err := u.db.Order("rowid ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (u *DefaultUserRepository) FindByID(id string) (*entity.User, error) {
	var user entity.User
	err := u.db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *DefaultUserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	err := u.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *DefaultUserRepository) Insert(user *entity.User) error {
	err := u.db.Create(user).Error
	if isUniqueViolation(err) {
		return store.ErrDuplicateEmail
	}
	return err
}

// Save updates an existing user, it never creates one.
func (u *DefaultUserRepository) Save(user *entity.User) error {
	res := u.db.Model(&entity.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":       user.Name,
			"email":      user.Email,
			"admin":      user.Admin,
			"updated_at": user.UpdatedAt,
		})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return store.ErrDuplicateEmail
		}
		return res.Error
	}

	if res.RowsAffected == 0 {
		return store.ErrUserNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
