package dto

import (
	"time"

	"poisar-hisap/internal/models"

	"github.com/google/uuid"
)

// ParseExpenseRequest carries one utterance to be parsed. Exactly one of
// text or audio must be set; the handler rejects dual-mode payloads before
// the request reaches the parse client.
type ParseExpenseRequest struct {
	Text        string `json:"text,omitempty"`
	Audio       string `json:"audio,omitempty" validate:"omitempty,base64"`
	AudioFormat string `json:"audio_format,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
}

// ParseExpenseResponse returns the parsed draft together with the review
// decision derived from the parser's confidence score.
type ParseExpenseResponse struct {
	Ok            bool                 `json:"ok"`
	ExpenseID     string               `json:"expense_id,omitempty"`
	AIConfidence  *float64             `json:"ai_confidence,omitempty"`
	Parsed        *models.ExpenseDraft `json:"parsed,omitempty"`
	RequireReview bool                 `json:"require_review"`
}

// SaveExpenseRequest carries a reviewed (or auto-accepted) draft to be
// persisted. RawText is the original utterance, used as the description
// fallback when the parser produced none.
type SaveExpenseRequest struct {
	Amount       *string  `json:"amount,omitempty" validate:"omitempty,expense_amount"`
	Currency     string   `json:"currency,omitempty" validate:"omitempty,currency_code"`
	Date         string   `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Category     *string  `json:"category,omitempty"`
	Vendor       *string  `json:"vendor,omitempty"`
	Description  *string  `json:"description,omitempty"`
	AIConfidence *float64 `json:"ai_confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
	RawText      string   `json:"raw_text,omitempty"`
}

// ExpenseResponse is the wire shape of one persisted expense
type ExpenseResponse struct {
	ID           uuid.UUID `json:"id"`
	Amount       string    `json:"amount"`
	Currency     string    `json:"currency"`
	Date         string    `json:"date"`
	Category     *string   `json:"category,omitempty"`
	Subcategory  *string   `json:"subcategory,omitempty"`
	Vendor       *string   `json:"vendor,omitempty"`
	Description  *string   `json:"description,omitempty"`
	AIConfidence *float64  `json:"ai_confidence,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListExpensesResponse is the wire shape of an owner-scoped expense query
type ListExpensesResponse struct {
	Window   models.Window     `json:"window"`
	Expenses []ExpenseResponse `json:"expenses"`
}

// DeleteExpenseResponse reports the outcome of a delete. Deleted is false
// when the record was already gone; the request still succeeds.
type DeleteExpenseResponse struct {
	Ok      bool `json:"ok"`
	Deleted bool `json:"deleted"`
}

// DashboardResponse bundles the aggregated view with the recent records it
// was computed from. Each response fully supersedes the previous one; the
// client never merges stale and fresh data.
type DashboardResponse struct {
	Window    models.Window         `json:"window"`
	View      models.AggregatedView `json:"view"`
	Recent    []ExpenseResponse     `json:"recent"`
	FetchedAt time.Time             `json:"fetched_at"`
}

// FromExpense converts a persisted record to its wire shape
func FromExpense(e *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           e.ID,
		Amount:       e.Amount.String(),
		Currency:     e.Currency,
		Date:         e.Date,
		Category:     e.Category,
		Subcategory:  e.Subcategory,
		Vendor:       e.Vendor,
		Description:  e.Description,
		AIConfidence: e.AIConfidence,
		CreatedAt:    e.CreatedAt,
	}
}

// FromExpenses converts a record list to wire shapes, preserving order
func FromExpenses(expenses []models.Expense) []ExpenseResponse {
	result := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		result = append(result, FromExpense(&expenses[i]))
	}
	return result
}
