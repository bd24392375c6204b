package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// DefaultCurrency is applied when the parser leaves currency empty
	DefaultCurrency = "INR"

	// DateLayout is the calendar-date storage format; the stored string is
	// also the grouping key for the daily series, so it is never rewritten
	// after save
	DateLayout = "2006-01-02"
)

var (
	ErrInvalidDate       = errors.New("date must use the YYYY-MM-DD format")
	ErrInvalidConfidence = errors.New("ai confidence must be within [0,1]")
	ErrMissingOwner      = errors.New("owner ID is required")
)

// Expense represents one persisted expense record. Records are immutable
// once saved: there is no update path, only delete.
type Expense struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency     string          `gorm:"type:varchar(3);not null;default:'INR'" json:"currency"`
	Date         string          `gorm:"type:varchar(10);not null;index" json:"date"`
	Category     *string         `gorm:"type:varchar(50)" json:"category,omitempty"`
	Subcategory  *string         `gorm:"type:varchar(50)" json:"subcategory,omitempty"`
	Vendor       *string         `gorm:"type:varchar(255)" json:"vendor,omitempty"`
	Description  *string         `gorm:"type:text" json:"description,omitempty"`
	AIConfidence *float64        `gorm:"type:decimal(4,3)" json:"ai_confidence,omitempty"`
	CreatedAt    time.Time       `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return e.Validate()
}

// Validate validates the expense fields
func (e *Expense) Validate() error {
	if e.OwnerID == uuid.Nil {
		return ErrMissingOwner
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return ErrInvalidDate
	}
	if e.AIConfidence != nil && (*e.AIConfidence < 0 || *e.AIConfidence > 1) {
		return ErrInvalidConfidence
	}
	return nil
}

// TableName returns the table name for Expense
func (e *Expense) TableName() string {
	return "expenses"
}

// ExpenseDraft is the ephemeral, unsaved candidate expense produced by the
// parser. Every field is optional; downstream consumers must treat them as
// untrusted until the draft crosses the save boundary.
type ExpenseDraft struct {
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Currency     string           `json:"currency,omitempty"`
	Date         string           `json:"date,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Subcategory  *string          `json:"subcategory,omitempty"`
	Vendor       *string          `json:"vendor,omitempty"`
	Description  *string          `json:"description,omitempty"`
	AIConfidence *float64         `json:"ai_confidence,omitempty"`
}

// ToRecord converts a draft into a persistable Expense, applying the
// permissive default-filling policy exactly once at this boundary:
// missing amount becomes 0 (deliberately not a validation gate), missing
// currency becomes INR, missing date becomes today, and a missing
// description falls back to the raw input text.
func (d *ExpenseDraft) ToRecord(ownerID uuid.UUID, rawText string, now time.Time) *Expense {
	record := &Expense{
		OwnerID:      ownerID,
		Amount:       decimal.Zero,
		Currency:     DefaultCurrency,
		Date:         now.Format(DateLayout),
		Category:     d.Category,
		Subcategory:  d.Subcategory,
		Vendor:       d.Vendor,
		Description:  d.Description,
		AIConfidence: d.AIConfidence,
	}

	if d.Amount != nil {
		record.Amount = *d.Amount
	}
	if d.Currency != "" {
		record.Currency = d.Currency
	}
	if d.Date != "" {
		record.Date = d.Date
	}
	if record.Description == nil && rawText != "" {
		text := rawText
		record.Description = &text
	}

	return record
}
