package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/keyword-insights/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := testJWTService()

	token, err := svc.GenerateToken("reporting-job")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "reporting-job", claims.GetClientID())
}

func TestJWTService_RejectsEmptyToken(t *testing.T) {
	svc := testJWTService()

	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := testJWTService()

	token, err := svc.GenerateToken("reporting-job")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := testJWTService().GenerateToken("reporting-job")
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different-secret", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestWithAuth_ProtectsRoutes(t *testing.T) {
	s := newTestServer()
	s.jwtService = testJWTService()

	handler := s.withAuth(s.router())

	// No token: rejected.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/runs", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Health stays open.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Valid token: passes through to the handler.
	token, err := s.jwtService.GenerateToken("reporting-job")
	require.NoError(t, err)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/runs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code, "reaches handler, which reports no store configured")
}

func TestWithAuth_DisabledWhenNoSecret(t *testing.T) {
	s := newTestServer()
	s.jwtService = nil

	handler := s.withAuth(s.router())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/runs", nil))
	assert.Equal(t, http.StatusConflict, rec.Code, "no auth required when JWT is not configured")
}
