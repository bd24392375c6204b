package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ExpenseTestSuite defines the test suite for the Expense model
type ExpenseTestSuite struct {
	suite.Suite
	ownerID uuid.UUID
	now     time.Time
}

func TestExpenseTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseTestSuite))
}

func (s *ExpenseTestSuite) SetupTest() {
	s.ownerID = uuid.New()
	s.now = time.Date(2025, 10, 14, 9, 30, 0, 0, time.UTC)
}

func (s *ExpenseTestSuite) TestToRecord_AppliesAllDefaults() {
	draft := &ExpenseDraft{}

	record := draft.ToRecord(s.ownerID, "coffee 120", s.now)

	s.Equal(s.ownerID, record.OwnerID)
	s.True(record.Amount.Equal(decimal.Zero), "missing amount defaults to 0, not a validation error")
	s.Equal(DefaultCurrency, record.Currency)
	s.Equal("2025-10-14", record.Date)
	s.Require().NotNil(record.Description)
	s.Equal("coffee 120", *record.Description, "description falls back to the raw utterance")
	s.Nil(record.Category)
	s.Nil(record.AIConfidence)
}

func (s *ExpenseTestSuite) TestToRecord_KeepsParsedFields() {
	amount := decimal.NewFromInt(120)
	category := "Food"
	subcategory := "Coffee"
	vendor := "Blue Tokai"
	description := "cold brew"
	confidence := 0.92

	draft := &ExpenseDraft{
		Amount:       &amount,
		Currency:     "EUR",
		Date:         "2025-10-01",
		Category:     &category,
		Subcategory:  &subcategory,
		Vendor:       &vendor,
		Description:  &description,
		AIConfidence: &confidence,
	}

	record := draft.ToRecord(s.ownerID, "coffee 120", s.now)

	s.True(record.Amount.Equal(amount))
	s.Equal("EUR", record.Currency)
	s.Equal("2025-10-01", record.Date)
	s.Equal(&category, record.Category)
	s.Equal(&subcategory, record.Subcategory)
	s.Equal(&vendor, record.Vendor)
	s.Equal("cold brew", *record.Description, "parsed description wins over raw text")
	s.Equal(&confidence, record.AIConfidence)
}

func (s *ExpenseTestSuite) TestToRecord_DateDefaultRoundTrip() {
	amount := decimal.NewFromInt(120)
	draft := &ExpenseDraft{Amount: &amount, Currency: "INR"}

	record := draft.ToRecord(s.ownerID, "", s.now)

	s.Equal(s.now.Format(DateLayout), record.Date, "absent date defaults to today")
	s.Nil(record.Description, "no raw text, no description fallback")
}

func (s *ExpenseTestSuite) TestValidate() {
	confidenceTooHigh := 1.3
	validConfidence := 0.55

	testCases := []struct {
		name    string
		expense Expense
		wantErr error
	}{
		{
			name: "valid record",
			expense: Expense{
				OwnerID:      s.ownerID,
				Amount:       decimal.NewFromInt(42),
				Currency:     DefaultCurrency,
				Date:         "2025-10-14",
				AIConfidence: &validConfidence,
			},
			wantErr: nil,
		},
		{
			name:    "missing owner",
			expense: Expense{Date: "2025-10-14"},
			wantErr: ErrMissingOwner,
		},
		{
			name:    "bad date format",
			expense: Expense{OwnerID: s.ownerID, Date: "Oct 14 2025"},
			wantErr: ErrInvalidDate,
		},
		{
			name: "confidence out of range",
			expense: Expense{
				OwnerID:      s.ownerID,
				Date:         "2025-10-14",
				AIConfidence: &confidenceTooHigh,
			},
			wantErr: ErrInvalidConfidence,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.expense.Validate()
			if tc.wantErr == nil {
				s.NoError(err)
			} else {
				s.ErrorIs(err, tc.wantErr)
			}
		})
	}
}

func (s *ExpenseTestSuite) TestParseWindow() {
	testCases := []struct {
		raw     string
		want    Window
		wantErr bool
	}{
		{"7", WindowWeek, false},
		{"30", WindowMonth, false},
		{"90", WindowQuarter, false},
		{"all", WindowAll, false},
		{"", WindowMonth, false},
		{"14", "", true},
		{"forever", "", true},
	}

	for _, tc := range testCases {
		s.Run("window "+tc.raw, func() {
			w, err := ParseWindow(tc.raw)
			if tc.wantErr {
				s.Error(err)
				return
			}
			s.NoError(err)
			s.Equal(tc.want, w)
		})
	}
}

func (s *ExpenseTestSuite) TestWindowStartDate() {
	start, ok := WindowWeek.StartDate(s.now)
	s.True(ok)
	s.Equal("2025-10-07", start)

	_, ok = WindowAll.StartDate(s.now)
	s.False(ok, "the unbounded window has no lower bound")
}
