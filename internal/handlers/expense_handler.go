package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"poisar-hisap/internal/dto"
	"poisar-hisap/internal/errors"
	"poisar-hisap/internal/models"
	"poisar-hisap/internal/parser"
	"poisar-hisap/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// RefreshKicker is notified when a write changes an owner's spending data,
// so the owner's dashboard loop reloads without waiting for the next tick.
type RefreshKicker interface {
	KickOwner(ownerID uuid.UUID)
}

// ExpenseHandler handles expense capture, persistence and deletion
type ExpenseHandler struct {
	expenses services.ExpenseServiceInterface
	kicker   RefreshKicker
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenses services.ExpenseServiceInterface, kicker RefreshKicker) *ExpenseHandler {
	return &ExpenseHandler{
		expenses: expenses,
		kicker:   kicker,
	}
}

// ParseExpense submits one utterance to the AI parse webhook
// @Summary Parse an utterance
// @Description Submit one text or audio utterance and receive a parsed expense draft with a review decision
// @Tags Expenses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ParseExpenseRequest true "Utterance to parse"
// @Success 200 {object} dto.ParseExpenseResponse "Parsed draft and review decision"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Both text and audio provided, or PARSE_004 - Empty utterance"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 502 {object} errors.ErrorResponse "PARSE_001 - Parse webhook failed"
// @Router /expenses/parse [post]
func (h *ExpenseHandler) ParseExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ParseExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	text := strings.TrimSpace(req.Text)
	hasText := text != ""
	hasAudio := req.Audio != ""

	if hasText && hasAudio {
		return SendError(c, errors.ValidationDualInput)
	}
	if !hasText && !hasAudio {
		return SendError(c, errors.ParseEmptyUtterance)
	}

	var input parser.Input
	if hasText {
		input = parser.TextInput{Text: text}
	} else {
		data, err := base64.StdEncoding.DecodeString(req.Audio)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Audio must be base64 encoded"))
		}
		if len(data) == 0 {
			return SendError(c, errors.ParseEmptyUtterance)
		}
		input = parser.AudioInput{Data: data, Format: req.AudioFormat}
	}

	outcome, err := h.expenses.ParseUtterance(c.Request().Context(), userID, input, parser.Meta{Timezone: req.Timezone})
	if err != nil {
		return sendParseError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ParseExpenseResponse{
		Ok:            true,
		AIConfidence:  outcome.Draft.AIConfidence,
		Parsed:        outcome.Draft,
		RequireReview: outcome.Decision.RequiresReview(),
	})
}

// sendParseError maps a parse pipeline failure to its wire error code
func sendParseError(c echo.Context, err error) error {
	if te, ok := err.(*parser.TransportError); ok {
		if te.StatusCode >= 400 && te.StatusCode < 500 {
			return SendError(c, errors.ParseServiceDenied)
		}
		if te.StatusCode == 0 {
			return SendError(c, errors.ParseMalformedBody)
		}
	}
	return SendError(c, errors.ParseRequestFailed)
}

// SaveExpense persists a reviewed or auto-accepted draft
// @Summary Save an expense
// @Description Persist a draft as an immutable expense record, applying defaults for missing fields
// @Tags Expenses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SaveExpenseRequest true "Draft to persist"
// @Success 201 {object} dto.ExpenseResponse "Saved expense"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid draft fields"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 422 {object} errors.ErrorResponse "EXPENSE_002 - Nothing to save"
// @Router /expenses [post]
func (h *ExpenseHandler) SaveExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SaveExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	draft, err := draftFromRequest(&req)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	record, err := h.expenses.SaveExpense(userID, draft, req.RawText)
	if err != nil {
		if err == services.ErrNoDraftAvailable {
			return SendError(c, errors.ExpenseSaveFailed,
				errors.WithDetails("No parsed draft available; parse an utterance first"))
		}
		return SendSystemError(c, err)
	}

	h.kicker.KickOwner(userID)

	return c.JSON(http.StatusCreated, dto.FromExpense(record))
}

// draftFromRequest converts save request fields to a draft. A request
// carrying no draft fields yields nil, which lets the service fall back to
// the latest parsed draft from the capture session.
func draftFromRequest(req *dto.SaveExpenseRequest) (*models.ExpenseDraft, error) {
	empty := req.Amount == nil && req.Currency == "" && req.Date == "" &&
		req.Category == nil && req.Vendor == nil && req.Description == nil &&
		req.AIConfidence == nil
	if empty {
		return nil, nil
	}

	draft := &models.ExpenseDraft{
		Currency:     req.Currency,
		Date:         req.Date,
		Category:     req.Category,
		Vendor:       req.Vendor,
		Description:  req.Description,
		AIConfidence: req.AIConfidence,
	}

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return nil, err
		}
		draft.Amount = &amount
	}

	return draft, nil
}

// ListExpenses retrieves the owner's expenses within a time window
// @Summary List expenses
// @Description Retrieve the owner's expenses within a window, newest first
// @Tags Expenses
// @Security BearerAuth
// @Produce json
// @Param window query string false "Time window" Enums(7, 30, 90, all) default(30)
// @Success 200 {object} dto.ListExpensesResponse "Expenses in the window"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid window"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	window, err := models.ParseWindow(c.QueryParam("window"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidWindow)
	}

	expenses, err := h.expenses.QueryExpenses(userID, window)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListExpensesResponse{
		Window:   window,
		Expenses: dto.FromExpenses(expenses),
	})
}

// DeleteExpense removes one expense owned by the caller
// @Summary Delete an expense
// @Description Delete an owned expense; deleting an already absent record still succeeds
// @Tags Expenses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Expense ID (UUID)"
// @Success 200 {object} dto.DeleteExpenseResponse "Delete outcome"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid expense ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Expense ID must be a valid UUID"))
	}

	deleted, err := h.expenses.DeleteExpense(expenseID, userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	if deleted {
		h.kicker.KickOwner(userID)
	}

	return c.JSON(http.StatusOK, dto.DeleteExpenseResponse{
		Ok:      true,
		Deleted: deleted,
	})
}
