package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"f2computers/site/internal/store"
)

// Scheduler runs the diagnostic heartbeat that logs store sizes. It never
// mutates state and is not part of the HTTP contract.
type Scheduler struct {
	cron  *cron.Cron
	store *store.Store
	log   zerolog.Logger
}

func NewScheduler(st *store.Store, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:  c,
		store: st,
		log:   log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 */5 * * * *", s.logStoreStats); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() context.CancelFunc {
	_, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	go func() {
		s.cron.Stop()
		cancel()
	}()
	return cancel
}

func (s *Scheduler) logStoreStats() {
	users, messages, sessions := s.store.Counts()
	s.log.Info().
		Int("users", users).
		Int("messages", messages).
		Int("sessions", sessions).
		Msg("store heartbeat")
}
