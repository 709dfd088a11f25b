package memory

import (
	"solidusers/cmd/internal/domain/entity"
	"solidusers/cmd/internal/domain/store"
	"sync"
)

// UserRepository keeps every user in process memory, in insertion order.
// All data is lost when the process exits.
type UserRepository struct {
	mu      sync.RWMutex
	users   []*entity.User
	byID    map[string]int
	byEmail map[string]int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]int),
		byEmail: make(map[string]int),
	}
}

// Insert appends the user. Email uniqueness is the caller's job.
func (r *UserRepository) Insert(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := len(r.users)
	r.users = append(r.users, user.Clone())
	r.byID[user.ID] = idx
	if _, taken := r.byEmail[user.Email]; !taken {
		r.byEmail[user.Email] = idx
	}
	return nil
}

func (r *UserRepository) FindByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return r.users[idx].Clone(), nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return r.users[idx].Clone(), nil
}

func (r *UserRepository) FindAll() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*entity.User, len(r.users))
	for i, user := range r.users {
		users[i] = user.Clone()
	}
	return users, nil
}

// Save replaces the stored record that has the same ID.
func (r *UserRepository) Save(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[user.ID]
	if !ok {
		return store.ErrUserNotFound
	}

	current := r.users[idx]
	if current.Email != user.Email {
		if r.byEmail[current.Email] == idx {
			delete(r.byEmail, current.Email)
		}
		if _, taken := r.byEmail[user.Email]; !taken {
			r.byEmail[user.Email] = idx
		}
	}
	r.users[idx] = user.Clone()
	return nil
}

func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
