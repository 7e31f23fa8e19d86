package models

import "time"

// Message status lifecycle. UpdateMessageStatus accepts arbitrary strings,
// matching the legacy service, so these are plain string constants rather
// than a closed enum type.
const (
	StatusNew     = "new"
	StatusRead    = "read"
	StatusReplied = "replied"
)

type User struct {
	ID        string
	FullName  string
	Email     string
	Password  string // stored verbatim, as the legacy service did
	CreatedAt time.Time
	LastLogin *time.Time
}

// Message is a contact form submission. It is serialized as-is on the admin
// messages endpoint, so the JSON tags are part of the wire contract.
type Message struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	Postcode  string    `json:"postcode"`
	PhoneNo   string    `json:"phoneNo"`
	Email     string    `json:"email"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	Status    string    `json:"status"`
}

// Session is a server-side login record keyed by an opaque session id. A
// session lives until explicit logout or process exit; there is no expiry.
type Session struct {
	UserID    string
	Email     string
	FullName  string
	LoginTime time.Time
}

// UserSummary is the password-free projection returned to the admin panel.
// IsOnline is derived from the session table, never stored.
type UserSummary struct {
	ID        string     `json:"id"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin"`
	IsOnline  bool       `json:"isOnline"`
}
