package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"poisar-hisap/internal/models"
	"poisar-hisap/internal/parser"
	"poisar-hisap/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrNoDraftAvailable = errors.New("no parsed draft available to save")
)

// expenseService implements ExpenseServiceInterface
type expenseService struct {
	repo         repositories.ExpenseRepositoryInterface
	parserClient ParserClientInterface
	reviewPolicy ReviewPolicyInterface
	sessions     *SessionRegistry
	metrics      MetricsRecorderInterface
	queryLimit   int
}

// NewExpenseService creates the expense capture service
func NewExpenseService(
	repo repositories.ExpenseRepositoryInterface,
	parserClient ParserClientInterface,
	reviewPolicy ReviewPolicyInterface,
	sessions *SessionRegistry,
	metrics MetricsRecorderInterface,
	queryLimit int,
) ExpenseServiceInterface {
	return &expenseService{
		repo:         repo,
		parserClient: parserClient,
		reviewPolicy: reviewPolicy,
		sessions:     sessions,
		metrics:      metrics,
		queryLimit:   queryLimit,
	}
}

// ParseUtterance submits one utterance to the parse webhook and gates the
// returned draft. The draft is recorded on the owner's capture session so a
// later save observes the newest result even when submissions complete out
// of order.
func (s *expenseService) ParseUtterance(ctx context.Context, ownerID uuid.UUID, input parser.Input, meta parser.Meta) (*ParseOutcome, error) {
	session := s.sessions.Get(ownerID)
	seq := session.Begin()

	start := time.Now()
	draft, err := s.parserClient.Submit(ctx, ownerID.String(), input, meta)
	s.metrics.RecordProcessingTime("parse.request", time.Since(start))

	if err != nil {
		s.metrics.IncrementCounter("parse.request.failed", nil)
		slog.Warn("parse submission failed",
			"owner_id", ownerID,
			"sequence", seq,
			"error", err)
		return nil, err
	}

	decision := s.reviewPolicy.Evaluate(draft.AIConfidence)
	session.Complete(seq, draft)

	s.metrics.IncrementCounter("parse.request.succeeded", map[string]string{
		"decision": string(decision),
	})
	s.metrics.RecordGauge("capture.active_sessions", float64(s.sessions.Pending()), nil)
	slog.Info("utterance parsed",
		"owner_id", ownerID,
		"sequence", seq,
		"decision", decision,
		"has_confidence", draft.AIConfidence != nil)

	return &ParseOutcome{
		Draft:    draft,
		Decision: decision,
		Sequence: seq,
	}, nil
}

// SaveExpense persists one draft for the owner. A nil draft falls back to
// the newest parsed draft on the owner's capture session. Missing fields
// are defaulted exactly once, here at the draft-to-record boundary.
func (s *expenseService) SaveExpense(ownerID uuid.UUID, draft *models.ExpenseDraft, rawText string) (*models.Expense, error) {
	session := s.sessions.Get(ownerID)

	if draft == nil {
		latest, _ := session.Latest()
		if latest == nil {
			return nil, ErrNoDraftAvailable
		}
		draft = latest
	}

	record := draft.ToRecord(ownerID, rawText, time.Now().UTC())

	if err := s.repo.Create(record); err != nil {
		s.metrics.IncrementCounter("expense.save.failed", nil)
		slog.Error("failed to save expense",
			"owner_id", ownerID,
			"error", err)
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	session.Clear()

	s.metrics.IncrementCounter("expense.saved", nil)
	s.metrics.RecordGauge("capture.active_sessions", float64(s.sessions.Pending()), nil)
	slog.Info("expense saved",
		"owner_id", ownerID,
		"expense_id", record.ID,
		"amount", record.Amount.String(),
		"date", record.Date)

	return record, nil
}

// QueryExpenses returns the owner's records inside the window, newest date
// first, capped at the configured limit.
func (s *expenseService) QueryExpenses(ownerID uuid.UUID, window models.Window) ([]models.Expense, error) {
	query := repositories.ExpenseQuery{
		OwnerID: ownerID,
		Limit:   s.queryLimit,
	}
	if startDate, ok := window.StartDate(time.Now().UTC()); ok {
		query.StartDate = &startDate
	}

	expenses, err := s.repo.GetByOwner(query)
	if err != nil {
		slog.Error("failed to query expenses",
			"owner_id", ownerID,
			"window", window,
			"error", err)
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}

	return expenses, nil
}

// DeleteExpense removes one of the owner's records. Deleting a record that
// is already gone succeeds; the bool reports whether anything was removed.
func (s *expenseService) DeleteExpense(id, ownerID uuid.UUID) (bool, error) {
	deleted, err := s.repo.Delete(id, ownerID)
	if err != nil {
		s.metrics.IncrementCounter("expense.delete.failed", nil)
		slog.Error("failed to delete expense",
			"owner_id", ownerID,
			"expense_id", id,
			"error", err)
		return false, fmt.Errorf("failed to delete expense: %w", err)
	}

	outcome := "deleted"
	if !deleted {
		outcome = "absent"
	}
	s.metrics.IncrementCounter("expense.deleted", map[string]string{"outcome": outcome})
	slog.Info("expense delete handled",
		"owner_id", ownerID,
		"expense_id", id,
		"outcome", outcome)

	return deleted, nil
}
