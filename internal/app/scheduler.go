package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
	"github.com/jsamuelsen/daily-motivation/internal/platform/metrics"
	"github.com/jsamuelsen/daily-motivation/internal/ports"
)

// Handle is a pending one-shot reminder.
type Handle struct {
	ID      string
	Profile string
	At      time.Time
	Quote   domain.Quote

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	fired    bool
	mu       sync.Mutex
}

// Cancel stops the reminder and waits for its goroutine to exit. It reports
// whether the reminder was still pending.
func (h *Handle) Cancel() bool {
	h.stopOnce.Do(func() { close(h.stop) })
	<-h.done

	h.mu.Lock()
	defer h.mu.Unlock()

	return !h.fired
}

// Done is closed once the reminder fired or was cancelled.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Fired reports whether the reminder time was reached and delivery attempted.
func (h *Handle) Fired() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.fired
}

// SchedulerConfig contains the dependencies of a Scheduler.
type SchedulerConfig struct {
	Notifier ports.Notifier
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Now      func() time.Time
}

// Scheduler fires reminders at a wall-clock time.
type Scheduler struct {
	notifier ports.Notifier
	logger   *slog.Logger
	metrics  *metrics.Metrics
	now      func() time.Time

	mu      sync.Mutex
	pending map[*Handle]struct{}
}

// NewScheduler creates a scheduler. Notifier is required.
func NewScheduler(cfg SchedulerConfig) *Scheduler {
	if cfg.Notifier == nil {
		panic("app: Scheduler requires a Notifier")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewUnregistered()
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Scheduler{
		notifier: cfg.Notifier,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		now:      cfg.Now,
		pending:  make(map[*Handle]struct{}),
	}
}

// Capability reports whether reminders can be delivered.
func (s *Scheduler) Capability() ports.Capability {
	return s.notifier.Capability()
}

// Schedule delivers the daily reminder for q to profile at at. A time in
// the past fires immediately. The reminder outlives ctx; only its values
// (such as the request logger) are carried over.
func (s *Scheduler) Schedule(ctx context.Context, profile string, at time.Time, q domain.Quote) (*Handle, error) {
	if s.notifier.Capability() == ports.Unavailable {
		return nil, domain.NewUnavailableError("notifier", "no notification backend configured")
	}

	h := &Handle{
		ID:      uuid.NewString(),
		Profile: profile,
		At:      at,
		Quote:   q.Clone(),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	s.mu.Lock()
	s.pending[h] = struct{}{}
	s.mu.Unlock()

	fireCtx := context.WithoutCancel(ctx)
	timer := time.NewTimer(max(at.Sub(s.now()), 0))

	go func() {
		defer close(h.done)
		defer timer.Stop()
		defer s.forget(h)

		select {
		case <-timer.C:
			h.mu.Lock()
			h.fired = true
			h.mu.Unlock()

			s.fire(fireCtx, h)
		case <-h.stop:
		}
	}()

	s.logger.InfoContext(ctx, "reminder scheduled",
		slog.String("handle", h.ID),
		slog.Time("at", at),
		slog.String("quote_id", q.ID),
	)

	return h, nil
}

func (s *Scheduler) fire(ctx context.Context, h *Handle) {
	err := s.notifier.Notify(ctx, domain.NewQuoteNotification(h.Profile, h.Quote))

	s.metrics.NotificationsSent.WithLabelValues(metrics.Result(err)).Inc()

	if err != nil {
		s.logger.WarnContext(ctx, "reminder delivery failed",
			slog.String("handle", h.ID),
			slog.Any("error", err),
		)

		return
	}

	s.logger.InfoContext(ctx, "reminder delivered", slog.String("handle", h.ID))
}

func (s *Scheduler) forget(h *Handle) {
	s.mu.Lock()
	delete(s.pending, h)
	s.mu.Unlock()
}

// Pending returns the number of reminders not yet fired or cancelled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pending)
}

// Close cancels every pending reminder and waits for them to exit.
func (s *Scheduler) Close() {
	s.mu.Lock()
	handles := make([]*Handle, 0, len(s.pending))
	for h := range s.pending {
		handles = append(handles, h)
	}
	s.mu.Unlock()

	for _, h := range handles {
		h.Cancel()
	}
}
