package services

import (
	"time"

	"poisar-hisap/internal/models"

	"github.com/google/uuid"
)

// RecentLimit caps the recent-transactions list carried on a snapshot
const RecentLimit = 25

// DashboardSnapshot is one complete dashboard state. Every refresh builds
// a new snapshot that fully supersedes the previous one.
type DashboardSnapshot struct {
	Window    models.Window
	View      models.AggregatedView
	Recent    []models.Expense
	FetchedAt time.Time
}

// dashboardService implements DashboardServiceInterface
type dashboardService struct {
	expenses   ExpenseServiceInterface
	aggregator AggregationServiceInterface
}

// NewDashboardService creates the snapshot builder
func NewDashboardService(expenses ExpenseServiceInterface, aggregator AggregationServiceInterface) DashboardServiceInterface {
	return &dashboardService{
		expenses:   expenses,
		aggregator: aggregator,
	}
}

// BuildSnapshot loads the owner's window of expenses and derives the
// aggregated view from exactly that set.
func (s *dashboardService) BuildSnapshot(ownerID uuid.UUID, window models.Window) (*DashboardSnapshot, error) {
	expenses, err := s.expenses.QueryExpenses(ownerID, window)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	recent := expenses
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}

	return &DashboardSnapshot{
		Window:    window,
		View:      s.aggregator.Aggregate(expenses, now),
		Recent:    recent,
		FetchedAt: now,
	}, nil
}
