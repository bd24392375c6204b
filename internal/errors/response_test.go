package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorResponse_BasicUsage tests creating a basic error response
func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AuthRequired, s.traceID)

	s.NotNil(response)
	s.Equal("AUTH_001", response.Error.Code)
	s.Equal("Sign in to record or view expenses", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

// TestNewErrorResponse_WithDetails tests creating error response with details
func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	details := []string{"Field validation failed", "Amount is required"}
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithDetails(details...))

	s.NotNil(response)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Validation failed", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Equal(details, response.Error.Details)
}

// TestNewErrorResponse_WithCustomMessage tests creating error response with custom message
func (s *ResponseTestSuite) TestNewErrorResponse_WithCustomMessage() {
	customMessage := "Custom error message for specific context"
	response := NewErrorResponse(SystemInternalError, s.traceID, WithMessage(customMessage))

	s.NotNil(response)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal(customMessage, response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
}

// TestNewValidationError tests creating validation errors from field errors
func (s *ResponseTestSuite) TestNewValidationError() {
	fieldErrors := map[string]string{
		"amount": "must be a decimal string",
	}
	response := NewValidationError(fieldErrors, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Len(response.Error.Details, 1)
	s.Contains(response.Error.Details[0], "amount")
}

// TestWrapSystemError tests wrapping internal errors
func (s *ResponseTestSuite) TestWrapSystemError() {
	internalErr := errors.New("pq: connection refused")
	response, err := WrapSystemError(internalErr, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "pq:")
	s.Equal(internalErr, err)
}

// TestGetHTTPStatus tests the error code to HTTP status mapping
func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected int
	}{
		{"validation is 400", ValidationGeneral, http.StatusBadRequest},
		{"dual input is 400", ValidationDualInput, http.StatusBadRequest},
		{"auth required is 401", AuthRequired, http.StatusUnauthorized},
		{"expired token is 401", AuthExpiredToken, http.StatusUnauthorized},
		{"owner mismatch is 403", AuthOwnerMismatch, http.StatusForbidden},
		{"expense not found is 404", ExpenseNotFound, http.StatusNotFound},
		{"device busy is 409", DeviceBusy, http.StatusConflict},
		{"device denied is 422", DevicePermissionDenied, http.StatusUnprocessableEntity},
		{"save failed is 422", ExpenseSaveFailed, http.StatusUnprocessableEntity},
		{"rate limited is 429", SystemRateLimitExceeded, http.StatusTooManyRequests},
		{"parse transport failure is 502", ParseRequestFailed, http.StatusBadGateway},
		{"malformed parser body is 502", ParseMalformedBody, http.StatusBadGateway},
		{"system error is 500", SystemInternalError, http.StatusInternalServerError},
		{"unknown code is 500", ErrorCode("NOPE_001"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

// TestErrorResponse_JSONSerialization tests the wire shape of error responses
func (s *ResponseTestSuite) TestErrorResponse_JSONSerialization() {
	response := NewErrorResponse(ParseRequestFailed, s.traceID, WithDetails("upstream returned 503"))

	data, err := response.ToJSON()
	s.NoError(err)

	var decoded map[string]map[string]interface{}
	s.NoError(json.Unmarshal(data, &decoded))
	s.Equal("PARSE_001", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
}

// TestErrorResponse_Classification tests client/server error classification
func (s *ResponseTestSuite) TestErrorResponse_Classification() {
	clientErr := NewErrorResponse(ValidationGeneral, s.traceID)
	s.True(clientErr.IsClientError())
	s.False(clientErr.IsServerError())

	serverErr := NewErrorResponse(ParseRequestFailed, s.traceID)
	s.False(serverErr.IsClientError())
	s.True(serverErr.IsServerError())
}
