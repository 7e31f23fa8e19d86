package store

import (
	"errors"
	"time"

	"f2computers/site/internal/ids"
	"f2computers/site/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Login matches email and password against the user collection, stamps the
// user's last login and opens a session, all under one lock. The caller gets
// the same error whether the email is unknown or the password is wrong.
func (s *Store) Login(email, password string) (models.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email != email || s.users[i].Password != password {
			continue
		}

		now := time.Now()
		s.users[i].LastLogin = &now

		sessionID := ids.NewSession()
		s.sessions[sessionID] = models.Session{
			UserID:    s.users[i].ID,
			Email:     s.users[i].Email,
			FullName:  s.users[i].FullName,
			LoginTime: now,
		}

		return s.users[i], sessionID, nil
	}

	return models.User{}, "", ErrInvalidCredentials
}

// Logout drops the session if it exists. Removing an unknown session id is a
// silent no-op; logout never fails.
func (s *Store) Logout(sessionID string) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	return sess, ok
}
