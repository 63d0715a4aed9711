package store

import (
	"sync"

	"shop-api/internal/models"
)

// UserStore holds the seeded user records in memory. Users are never deleted;
// the only mutation is replacing a password hash after a reset.
type UserStore struct {
	mu         sync.RWMutex
	byUsername map[string]*models.User
	order      []string
}

func NewUserStore(users []*models.User) *UserStore {
	s := &UserStore{
		byUsername: make(map[string]*models.User, len(users)),
	}
	for _, u := range users {
		s.byUsername[u.Username] = u
		s.order = append(s.order, u.Username)
	}
	return s
}

func (s *UserStore) FindByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byUsername[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *UserStore) FindByID(id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, username := range s.order {
		if u := s.byUsername[username]; u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *UserStore) SetPasswordHash(username, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byUsername[username]
	if !ok {
		return ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}
