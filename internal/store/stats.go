package store

import (
	"time"

	"f2computers/site/internal/models"
)

// Stats is the dashboard counter payload. Everything is recomputed by full
// scan on each call; nothing is maintained incrementally.
type Stats struct {
	TotalMessages int `json:"totalMessages"`
	NewMessages   int `json:"newMessages"`
	TodayMessages int `json:"todayMessages"`
	TotalUsers    int `json:"totalUsers"`
	TodayUsers    int `json:"todayUsers"`
	OnlineUsers   int `json:"onlineUsers"`
}

// Stats counts messages and users, with "today" meaning the server-local
// calendar day. The session count stands in for online users.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := time.Now()
	st := Stats{
		TotalMessages: len(s.messages),
		TotalUsers:    len(s.users),
		OnlineUsers:   len(s.sessions),
	}

	for _, m := range s.messages {
		if m.Status == models.StatusNew {
			st.NewMessages++
		}
		if sameDay(m.CreatedAt, today) {
			st.TodayMessages++
		}
	}
	for _, u := range s.users {
		if sameDay(u.CreatedAt, today) {
			st.TodayUsers++
		}
	}

	return st
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}
