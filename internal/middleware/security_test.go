package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// SecurityHeadersTestSuite defines the test suite for security headers middleware
type SecurityHeadersTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestSecurityHeadersTestSuite(t *testing.T) {
	suite.Run(t, new(SecurityHeadersTestSuite))
}

func (s *SecurityHeadersTestSuite) SetupTest() {
	s.echo = echo.New()
}

func (s *SecurityHeadersTestSuite) serve(target string) *httptest.ResponseRecorder {
	handler := SecurityHeaders()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(handler(c))
	return rec
}

func (s *SecurityHeadersTestSuite) TestSecurityHeaders_SetsBaselineHeaders() {
	rec := s.serve("/api/v1/dashboard")

	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
	s.Equal("DENY", rec.Header().Get("X-Frame-Options"))
	s.Equal("default-src 'self'", rec.Header().Get("Content-Security-Policy"))
	s.Equal("strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	s.Contains(rec.Header().Get("Strict-Transport-Security"), "max-age=31536000")
}

func (s *SecurityHeadersTestSuite) TestSecurityHeaders_MicrophoneStaysAvailable() {
	rec := s.serve("/api/v1/expenses/parse")

	policy := rec.Header().Get("Permissions-Policy")
	s.Contains(policy, "microphone=(self)", "voice capture needs the microphone on same-origin pages")
	s.Contains(policy, "geolocation=()")
	s.Contains(policy, "camera=()")
}

func (s *SecurityHeadersTestSuite) TestSecurityHeaders_DisablesCaching() {
	rec := s.serve("/api/v1/expenses")

	s.Contains(rec.Header().Get("Cache-Control"), "no-store")
	s.Equal("no-cache", rec.Header().Get("Pragma"))
	s.Equal("0", rec.Header().Get("Expires"))
}
