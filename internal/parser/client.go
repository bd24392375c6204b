package parser

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"poisar-hisap/internal/config"
	"poisar-hisap/internal/models"

	"github.com/shopspring/decimal"
)

// Input is one utterance handed to the parse webhook. Exactly one concrete
// form exists per submission; the two forms are never combined.
type Input interface {
	apply(payload *webhookRequest)
}

// TextInput is a typed utterance
type TextInput struct {
	Text string
}

func (in TextInput) apply(payload *webhookRequest) {
	payload.Text = in.Text
}

// AudioInput is a recorded utterance; Data is the raw audio blob
type AudioInput struct {
	Data   []byte
	Format string
}

func (in AudioInput) apply(payload *webhookRequest) {
	payload.Audio = base64.StdEncoding.EncodeToString(in.Data)
	payload.AudioFormat = in.Format
}

// TransportError reports a failed round-trip to the parse webhook, either a
// non-success status or an unreadable response body.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("parse webhook returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("parse webhook request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// webhookRequest is the outbound payload shape the webhook contract expects
type webhookRequest struct {
	Text        string      `json:"text,omitempty"`
	Audio       string      `json:"audio,omitempty"`
	AudioFormat string      `json:"audio_format,omitempty"`
	UserID      string      `json:"user_id"`
	Source      string      `json:"source"`
	Device      string      `json:"device"`
	Meta        webhookMeta `json:"meta"`
}

type webhookMeta struct {
	Timezone string `json:"timezone"`
}

// Meta carries per-submission client context. An empty timezone falls back
// to the client's configured default.
type Meta struct {
	Timezone string
}

// webhookResponse is the inbound envelope. The parsed fields ride nested
// under "parsed" and the confidence score at the top level; everything is
// optional, the persistence boundary fills whatever the parser left blank.
type webhookResponse struct {
	OK           bool           `json:"ok"`
	ExpenseID    *string        `json:"expense_id,omitempty"`
	AIConfidence *float64       `json:"ai_confidence,omitempty"`
	Parsed       *webhookParsed `json:"parsed,omitempty"`
}

type webhookParsed struct {
	Amount       *float64 `json:"amount,omitempty"`
	Currency     string   `json:"currency,omitempty"`
	Date         string   `json:"date,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Subcategory  *string  `json:"subcategory,omitempty"`
	Vendor       *string  `json:"vendor,omitempty"`
	Description  *string  `json:"description,omitempty"`
	AIConfidence *float64 `json:"ai_confidence,omitempty"`
}

// Client submits utterances to the external parse webhook
type Client struct {
	webhookURL string
	source     string
	device     string
	timezone   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a parse webhook client
func NewClient(cfg *config.ParserConfig) *Client {
	return &Client{
		webhookURL: cfg.WebhookURL,
		source:     cfg.Source,
		device:     cfg.Device,
		timezone:   cfg.Timezone,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.Default().With("component", "parser_client"),
	}
}

// Submit sends one utterance to the webhook and returns the parsed draft.
// The caller decides what to do with the draft; submission never persists
// anything on its own.
func (c *Client) Submit(ctx context.Context, userID string, input Input, meta Meta) (*models.ExpenseDraft, error) {
	timezone := meta.Timezone
	if timezone == "" {
		timezone = c.timezone
	}

	payload := &webhookRequest{
		UserID: userID,
		Source: c.source,
		Device: c.device,
		Meta:   webhookMeta{Timezone: timezone},
	}
	input.apply(payload)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("parse webhook unreachable", "error", err)
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		c.logger.Warn("parse webhook rejected submission", "status", resp.StatusCode)
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	var envelope webhookResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.logger.Warn("parse webhook returned malformed body", "error", err)
		return nil, &TransportError{Err: fmt.Errorf("malformed response body: %w", err)}
	}

	return envelope.toDraft(), nil
}

func (r *webhookResponse) toDraft() *models.ExpenseDraft {
	draft := &models.ExpenseDraft{
		AIConfidence: r.AIConfidence,
	}
	if r.Parsed != nil {
		draft.Currency = r.Parsed.Currency
		draft.Date = r.Parsed.Date
		draft.Category = r.Parsed.Category
		draft.Subcategory = r.Parsed.Subcategory
		draft.Vendor = r.Parsed.Vendor
		draft.Description = r.Parsed.Description
		if r.Parsed.Amount != nil {
			amount := decimal.NewFromFloat(*r.Parsed.Amount)
			draft.Amount = &amount
		}
		// The top-level score feeds the review gate; the nested copy only
		// counts when the envelope carries none.
		if draft.AIConfidence == nil {
			draft.AIConfidence = r.Parsed.AIConfidence
		}
	}
	return draft
}
