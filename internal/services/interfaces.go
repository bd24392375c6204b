package services

import (
	"context"
	"time"

	"poisar-hisap/internal/models"
	"poisar-hisap/internal/parser"

	"github.com/google/uuid"
)

// ParseOutcome is what one utterance submission produced: the draft as the
// parser returned it plus the review decision derived from its confidence.
type ParseOutcome struct {
	Draft    *models.ExpenseDraft
	Decision Decision
	Sequence uint64
}

// ExpenseServiceInterface defines expense capture and persistence operations
type ExpenseServiceInterface interface {
	ParseUtterance(ctx context.Context, ownerID uuid.UUID, input parser.Input, meta parser.Meta) (*ParseOutcome, error)
	SaveExpense(ownerID uuid.UUID, draft *models.ExpenseDraft, rawText string) (*models.Expense, error)
	QueryExpenses(ownerID uuid.UUID, window models.Window) ([]models.Expense, error)
	DeleteExpense(id, ownerID uuid.UUID) (bool, error)
}

// ParserClientInterface is the outbound parse webhook contract
type ParserClientInterface interface {
	Submit(ctx context.Context, userID string, input parser.Input, meta parser.Meta) (*models.ExpenseDraft, error)
}

// ReviewPolicyInterface decides whether a parsed draft needs user review
// before it may be saved.
type ReviewPolicyInterface interface {
	Evaluate(confidence *float64) Decision
}

// AggregationServiceInterface derives the dashboard view from a loaded
// expense set. Aggregation is pure; it never touches storage.
type AggregationServiceInterface interface {
	Aggregate(expenses []models.Expense, now time.Time) models.AggregatedView
}

// DashboardServiceInterface assembles one full dashboard snapshot
type DashboardServiceInterface interface {
	BuildSnapshot(ownerID uuid.UUID, window models.Window) (*DashboardSnapshot, error)
}

// DashboardRefresherInterface is the periodic refresh handle owned by one
// dashboard instance.
type DashboardRefresherInterface interface {
	Start(ctx context.Context)
	Kick()
	Stop()
	Snapshot() *DashboardSnapshot
}

type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
