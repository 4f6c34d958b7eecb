package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrDuplicateChecker is returned when attempting to register a health checker
// with a name that is already registered.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is implemented by components that can report their health.
// Adapters register themselves with the HealthRegistry at startup.
//
// Example implementation:
//
//	func (p *ZenQuotesProvider) Name() string { return "zenquotes" }
//
//	func (p *ZenQuotesProvider) Check(ctx context.Context) error {
//	    return p.client.Ping(ctx)
//	}
type HealthChecker interface {
	// Name returns a unique identifier for this health check.
	Name() string

	// Check returns an error if the component is unhealthy.
	// Implementations should respect context cancellation and deadlines.
	Check(ctx context.Context) error
}

// HealthRegistry aggregates health checks from multiple components.
type HealthRegistry interface {
	// Register adds a critical health checker. A failing critical check
	// makes the whole service unhealthy.
	Register(checker HealthChecker) error

	// RegisterOptional adds a checker whose failure only degrades the service.
	// Quote providers are optional because the aggregator falls back to
	// bundled quotes when all of them fail.
	RegisterOptional(checker HealthChecker) error

	// CheckAll runs all registered health checks and returns aggregated results.
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus represents the overall health state.
type HealthStatus string

const (
	// HealthStatusHealthy indicates all checks passed.
	HealthStatusHealthy HealthStatus = "healthy"

	// HealthStatusDegraded indicates only optional checks failed.
	HealthStatusDegraded HealthStatus = "degraded"

	// HealthStatusUnhealthy indicates critical checks failed.
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult contains the aggregated health check results.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult contains the result of a single health check.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Optional bool          `json:"optional,omitempty"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

type registeredChecker struct {
	checker  HealthChecker
	optional bool
}

// DefaultHealthRegistry is a thread-safe implementation of HealthRegistry.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	checkers []registeredChecker
}

// NewHealthRegistry creates a new health registry.
func NewHealthRegistry() *DefaultHealthRegistry {
	return &DefaultHealthRegistry{
		checkers: make([]registeredChecker, 0),
	}
}

// Register adds a critical health checker.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	return r.add(checker, false)
}

// RegisterOptional adds a checker that can only degrade the overall status.
func (r *DefaultHealthRegistry) RegisterOptional(checker HealthChecker) error {
	return r.add(checker, true)
}

func (r *DefaultHealthRegistry) add(checker HealthChecker, optional bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	for _, c := range r.checkers {
		if c.checker.Name() == name {
			return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
		}
	}

	r.checkers = append(r.checkers, registeredChecker{checker: checker, optional: optional})

	return nil
}

// CheckAll runs all registered health checks concurrently.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := make([]registeredChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	result := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, rc := range checkers {
		wg.Go(func() {
			start := time.Now()
			err := rc.checker.Check(ctx)

			checkResult := &CheckResult{
				Status:   HealthStatusHealthy,
				Optional: rc.optional,
				Duration: time.Since(start),
			}

			if err != nil {
				checkResult.Status = HealthStatusUnhealthy
				checkResult.Message = err.Error()
			}

			mu.Lock()
			defer mu.Unlock()

			result.Checks[rc.checker.Name()] = checkResult
			result.Status = worse(result.Status, checkResult)
		})
	}

	wg.Wait()

	return result
}

func worse(current HealthStatus, check *CheckResult) HealthStatus {
	if check.Status == HealthStatusHealthy || current == HealthStatusUnhealthy {
		return current
	}

	if check.Optional {
		return HealthStatusDegraded
	}

	return HealthStatusUnhealthy
}
