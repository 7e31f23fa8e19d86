package store

import (
	"errors"
	"time"

	"f2computers/site/internal/ids"
	"f2computers/site/internal/models"
)

var ErrEmailTaken = errors.New("user already exists with this email")

// CreateUser registers a new account. The email uniqueness check and the
// append happen under the same lock so concurrent registrations cannot race.
func (s *Store) CreateUser(fullName, email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return models.User{}, ErrEmailTaken
		}
	}

	user := models.User{
		ID:        ids.New(),
		FullName:  fullName,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now(),
	}
	s.users = append(s.users, user)

	return user, nil
}

// UserSummaries returns every user without their password, with the derived
// online flag. O(users x sessions), which both collections are small enough
// to tolerate.
func (s *Store) UserSummaries() []models.UserSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.UserSummary, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, models.UserSummary{
			ID:        u.ID,
			FullName:  u.FullName,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
			LastLogin: u.LastLogin,
			IsOnline:  s.userOnlineLocked(u.ID),
		})
	}
	return out
}

func (s *Store) userOnlineLocked(userID string) bool {
	for _, sess := range s.sessions {
		if sess.UserID == userID {
			return true
		}
	}
	return false
}
