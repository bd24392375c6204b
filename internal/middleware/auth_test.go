package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"poisar-hisap/internal/config"
	"poisar-hisap/internal/models"
	"poisar-hisap/internal/services"
	"poisar-hisap/internal/services/service_mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	jwtConfig    *config.JWTConfig
	tokenService services.TokenServiceInterface
	metrics      *service_mocks.MockMetricsRecorderInterface
	e            *echo.Echo
	userID       uuid.UUID
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.NoError(err)

	s.jwtConfig = &config.JWTConfig{
		PrivateKey: privateKey,
		PublicKey:  publicKey,
		Issuer:     "expenses-auth",
	}

	s.tokenService = services.NewTokenService(s.jwtConfig)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.e = echo.New()
	s.userID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expiredToken signs a token whose lifetime already ended, as if it came
// from the auth collaborator long ago
func (s *AuthMiddlewareSuite) expiredToken() string {
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.jwtConfig.Issuer,
			Subject:   s.userID.String(),
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		UserID:    s.userID.String(),
		Email:     "user@example.com",
		TokenType: services.TokenTypeAccess,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.jwtConfig.PrivateKey)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareSuite) do(header string) (*httptest.ResponseRecorder, error) {
	middleware := RequireAuth(s.tokenService, s.metrics)
	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	return rec, handler(c)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	token, _, err := s.tokenService.GenerateAccessToken(s.userID, "user@example.com")
	s.NoError(err)

	middleware := RequireAuth(s.tokenService, s.metrics)
	handler := middleware(func(c echo.Context) error {
		s.Equal(s.userID, c.Get("user_id"))
		s.Equal("user@example.com", c.Get("user_email"))
		s.NotEmpty(c.Get("token_jti"))
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	rec, err := s.do("")

	// Auth middleware uses SendError which sends the response and returns nil
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidHeaderFormat() {
	rec, err := s.do("InvalidToken")

	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedJWT() {
	rec, err := s.do("Bearer invalid.jwt.token")

	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	rec, err := s.do("Bearer " + s.expiredToken())

	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenSignedWithDifferentKey() {
	otherPrivate, otherPublic, err := config.GenerateRSAKeyPair()
	s.NoError(err)

	otherService := services.NewTokenService(&config.JWTConfig{
		PrivateKey: otherPrivate,
		PublicKey:  otherPublic,
		Issuer:     "expenses-auth",
	})

	token, _, err := otherService.GenerateAccessToken(s.userID, "user@example.com")
	s.NoError(err)

	rec, err := s.do("Bearer " + token)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}
