// Package store holds the process-lifetime state of the site: registered
// users, contact messages and login sessions. Nothing is persisted; a restart
// resets everything to the seed fixtures.
package store

import (
	"sync"
	"time"

	"f2computers/site/internal/ids"
	"f2computers/site/internal/models"
)

// Store owns the three shared collections. Gin serves requests on multiple
// goroutines, so a single mutex guards all of them; composite check-then-act
// operations (register, login, status update) run under one lock acquisition.
type Store struct {
	mu       sync.RWMutex
	users    []models.User
	messages []models.Message
	sessions map[string]models.Session
}

func New() *Store {
	return &Store{
		sessions: make(map[string]models.Session),
	}
}

// SeedDemoData loads the fixture accounts and the sample contact message the
// legacy service shipped with.
func (s *Store) SeedDemoData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	s.users = append(s.users,
		models.User{
			ID:        ids.New(),
			FullName:  "Test User",
			Email:     "test@example.com",
			Password:  "123456",
			CreatedAt: now,
		},
		models.User{
			ID:        ids.New(),
			FullName:  "Admin User",
			Email:     "admin@f2computers.com",
			Password:  "admin123",
			CreatedAt: now,
		},
	)

	s.messages = append(s.messages, models.Message{
		ID:        ids.New(),
		FullName:  "Mamanazarov Akbar",
		Street:    "123 Main Street",
		City:      "Tashkent",
		Postcode:  "100000",
		PhoneNo:   "+998901234567",
		Email:     "john@example.com",
		Body:      "Salom! Mening laptopim ishlamayapti. Screen qora bo'lib qolgan. Yordam bera olasizmi?",
		CreatedAt: now.Add(-2 * time.Hour),
		Status:    models.StatusNew,
	})
}

// Counts reports the size of each collection.
func (s *Store) Counts() (users, messages, sessions int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), len(s.messages), len(s.sessions)
}
