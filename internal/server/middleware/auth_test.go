package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct {
	clientID string
	err      error
}

type fakeClaims struct {
	clientID string
}

func (c *fakeClaims) GetClientID() string { return c.clientID }

func (v *fakeValidator) ValidateToken(tokenString string) (ClientIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &fakeClaims{clientID: v.clientID}, nil
}

func protectedHandler(t *testing.T, wantClient string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID, err := GetClientID(r)
		require.NoError(t, err)
		assert.Equal(t, wantClient, clientID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ValidToken(t *testing.T) {
	validator := &fakeValidator{clientID: "reporting-job"}
	handler := Auth(validator)(protectedHandler(t, "reporting-job"))

	req := httptest.NewRequest("GET", "/runs", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_CaseInsensitiveBearer(t *testing.T) {
	validator := &fakeValidator{clientID: "reporting-job"}
	handler := Auth(validator)(protectedHandler(t, "reporting-job"))

	req := httptest.NewRequest("GET", "/runs", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_MissingHeader(t *testing.T) {
	handler := Auth(&fakeValidator{})(protectedHandler(t, ""))

	req := httptest.NewRequest("GET", "/runs", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	handler := Auth(&fakeValidator{})(protectedHandler(t, ""))

	for _, header := range []string{"good-token", "Basic abc", "Bearer", "Bearer a b"} {
		req := httptest.NewRequest("GET", "/runs", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q should be rejected", header)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	validator := &fakeValidator{err: fmt.Errorf("token expired")}
	handler := Auth(validator)(protectedHandler(t, ""))

	req := httptest.NewRequest("GET", "/runs", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetClientID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/runs", nil)
	_, err := GetClientID(req)
	assert.Error(t, err)
}
