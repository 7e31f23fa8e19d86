package store

import (
	"errors"
	"sort"
	"time"

	"f2computers/site/internal/ids"
	"f2computers/site/internal/models"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageInput carries a contact form submission. Only FullName, Email and
// Body are required; the handler validates presence before calling the store.
type MessageInput struct {
	FullName string
	Street   string
	City     string
	Postcode string
	PhoneNo  string
	Email    string
	Body     string
}

// CreateMessage inserts a new contact message at the head of the collection,
// so insertion order keeps the list newest-first.
func (s *Store) CreateMessage(in MessageInput) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.Message{
		ID:        ids.New(),
		FullName:  in.FullName,
		Street:    in.Street,
		City:      in.City,
		Postcode:  in.Postcode,
		PhoneNo:   in.PhoneNo,
		Email:     in.Email,
		Body:      in.Body,
		CreatedAt: time.Now(),
		Status:    models.StatusNew,
	}
	s.messages = append([]models.Message{msg}, s.messages...)

	return msg
}

// Messages returns every message, newest first. The sort is re-applied on
// every listing since status updates never re-order the slice; equal
// timestamps keep their insertion order.
func (s *Store) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	sort.SliceStable(s.messages, func(i, j int) bool {
		return s.messages[i].CreatedAt.After(s.messages[j].CreatedAt)
	})

	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// UpdateMessageStatus overwrites the status of the message with the given id.
// Any status string is accepted, matching the legacy service.
func (s *Store) UpdateMessageStatus(id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Status = status
			return nil
		}
	}
	return ErrMessageNotFound
}
