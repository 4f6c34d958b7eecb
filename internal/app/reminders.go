package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

// ReminderServiceConfig contains the dependencies of a ReminderService.
type ReminderServiceConfig struct {
	Scheduler *Scheduler
	Store     *PreferenceStore
	Quotes    *QuoteService
	Logger    *slog.Logger
	Now       func() time.Time
}

// ReminderService keeps at most one pending daily reminder per profile.
type ReminderService struct {
	scheduler *Scheduler
	store     *PreferenceStore
	quotes    *QuoteService
	logger    *slog.Logger
	now       func() time.Time

	mu      sync.Mutex
	handles map[string]*Handle
}

// NewReminderService creates a reminder service.
func NewReminderService(cfg ReminderServiceConfig) *ReminderService {
	if cfg.Scheduler == nil || cfg.Store == nil || cfg.Quotes == nil {
		panic("app: ReminderService requires a Scheduler, PreferenceStore and QuoteService")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &ReminderService{
		scheduler: cfg.Scheduler,
		store:     cfg.Store,
		quotes:    cfg.Quotes,
		logger:    cfg.Logger,
		now:       cfg.Now,
		handles:   make(map[string]*Handle),
	}
}

// ScheduleDaily schedules the next reminder for profile with its quote of
// the day. clock is "HH:mm"; an empty clock uses the profile's
// notificationTime. Any reminder already pending for the profile is replaced.
//
// Profiles with notifications disabled get domain.ErrForbidden.
func (s *ReminderService) ScheduleDaily(ctx context.Context, profile, clock string) (*Handle, error) {
	rec := s.store.Read(ctx, profile)
	if !rec.NotificationsEnabled {
		return nil, domain.NewForbiddenError("schedule reminder", "notifications are disabled for this profile")
	}

	if clock == "" {
		clock = rec.NotificationTime
	}

	at, err := domain.NextOccurrence(s.now(), clock)
	if err != nil {
		return nil, err
	}

	q := s.quotes.QuoteOfTheDay(ctx, profile)

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.handles[profile]; ok {
		prev.Cancel()
		delete(s.handles, profile)
	}

	h, err := s.scheduler.Schedule(ctx, profile, at, q)
	if err != nil {
		return nil, err
	}

	s.handles[profile] = h

	return h, nil
}

// Cancel cancels the profile's pending reminder and reports whether one
// was pending.
func (s *ReminderService) Cancel(profile string) bool {
	s.mu.Lock()
	h, ok := s.handles[profile]
	delete(s.handles, profile)
	s.mu.Unlock()

	if !ok {
		return false
	}

	return h.Cancel()
}

// Close cancels every pending reminder.
func (s *ReminderService) Close() {
	s.mu.Lock()
	clear(s.handles)
	s.mu.Unlock()

	s.scheduler.Close()
}
