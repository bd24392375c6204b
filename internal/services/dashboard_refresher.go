package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"poisar-hisap/internal/models"

	"github.com/google/uuid"
)

// dashboardRefresher keeps one dashboard instance fresh. All refreshes,
// whether from the initial load, the periodic tick or a kick after a
// delete, run on a single goroutine, so a scheduled tick can never race a
// delete-triggered reload and resurrect a removed record.
type dashboardRefresher struct {
	dashboard DashboardServiceInterface
	ownerID   uuid.UUID
	window    models.Window
	interval  time.Duration
	metrics   MetricsRecorderInterface

	kick    chan string
	stopped chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once

	mu      sync.RWMutex
	current *DashboardSnapshot
}

// NewDashboardRefresher creates a refresher for one owner's dashboard. The
// caller owns the handle and must Stop it when the dashboard goes away.
func NewDashboardRefresher(
	dashboard DashboardServiceInterface,
	ownerID uuid.UUID,
	window models.Window,
	interval time.Duration,
	metrics MetricsRecorderInterface,
) DashboardRefresherInterface {
	return &dashboardRefresher{
		dashboard: dashboard,
		ownerID:   ownerID,
		window:    window,
		interval:  interval,
		metrics:   metrics,
		kick:      make(chan string, 1),
		stopped:   make(chan struct{}),
	}
}

// Start launches the refresh loop: one immediate cycle, then fixed-interval
// ticks until Stop or context cancellation. Starting twice is a no-op.
func (r *dashboardRefresher) Start(ctx context.Context) {
	r.startOnce.Do(func() {
		go r.loop(ctx)
	})
}

// Kick requests an immediate refresh through the serialized loop. A kick
// while one is already pending collapses into it.
func (r *dashboardRefresher) Kick() {
	select {
	case r.kick <- "kick":
	default:
	}
}

// Stop ends the refresh loop. Safe to call more than once.
func (r *dashboardRefresher) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopped)
	})
}

// Snapshot returns the most recently built snapshot, or nil before the
// first cycle completes.
func (r *dashboardRefresher) Snapshot() *DashboardSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *dashboardRefresher) loop(ctx context.Context) {
	r.refresh("initial")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopped:
			return
		case <-ticker.C:
			r.refresh("tick")
		case trigger := <-r.kick:
			r.refresh(trigger)
		}
	}
}

func (r *dashboardRefresher) refresh(trigger string) {
	start := time.Now()
	snapshot, err := r.dashboard.BuildSnapshot(r.ownerID, r.window)
	r.metrics.RecordProcessingTime("dashboard.refresh", time.Since(start))

	if err != nil {
		r.metrics.IncrementCounter("dashboard.refresh.failed", map[string]string{"trigger": trigger})
		slog.Error("dashboard refresh failed",
			"owner_id", r.ownerID,
			"trigger", trigger,
			"error", err)
		return
	}

	r.mu.Lock()
	r.current = snapshot
	r.mu.Unlock()

	r.metrics.IncrementCounter("dashboard.refresh.completed", map[string]string{"trigger": trigger})
}
