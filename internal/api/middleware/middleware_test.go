package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-collectibles/internal/api/middleware"
	"github.com/feral-file/ff-collectibles/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func generateKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	key, publicPEM := generateKey(t)
	otherKey, _ := generateKey(t)

	authenticator, err := middleware.NewAuthenticator(middleware.AuthConfig{
		JWTPublicKey: publicPEM,
		APIKeys:      []string{"secret", ""},
	})
	require.NoError(t, err)
	assert.True(t, authenticator.Enabled())

	valid := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	foreign := signToken(t, otherKey, jwt.RegisteredClaims{Subject: "user-1"})

	tests := []struct {
		name        string
		header      string
		wantErr     error
		wantAnyErr  bool
		wantType    string
		wantSubject string
	}{
		{name: "missing header", header: "", wantErr: middleware.ErrMissingHeader},
		{name: "no credentials", header: "Bearer", wantErr: middleware.ErrInvalidHeader},
		{name: "valid jwt", header: "Bearer " + valid, wantType: middleware.AuthTypeJWT, wantSubject: "user-1"},
		{name: "expired jwt", header: "Bearer " + expired, wantAnyErr: true},
		{name: "jwt signed by another key", header: "Bearer " + foreign, wantAnyErr: true},
		{name: "valid api key", header: "ApiKey secret", wantType: middleware.AuthTypeAPIKey},
		{name: "api key scheme is case insensitive", header: "apikey secret", wantType: middleware.AuthTypeAPIKey},
		{name: "invalid api key", header: "ApiKey nope", wantErr: middleware.ErrInvalidAPIKey},
		{name: "unsupported scheme", header: "Basic abc", wantErr: middleware.ErrUnsupportedAuthType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authenticator.Authenticate(tt.header)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
			case tt.wantAnyErr:
				assert.Error(t, err)
				assert.Nil(t, result)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantType, result.AuthType)
				assert.Equal(t, tt.wantSubject, result.AuthSubject)
			}
		})
	}
}

func TestNewAuthenticator_InvalidKey(t *testing.T) {
	_, err := middleware.NewAuthenticator(middleware.AuthConfig{JWTPublicKey: "not a pem"})
	assert.Error(t, err)
}

func TestAuthenticate_JWTNotConfigured(t *testing.T) {
	authenticator, err := middleware.NewAuthenticator(middleware.AuthConfig{APIKeys: []string{"secret"}})
	require.NoError(t, err)

	_, err = authenticator.Authenticate("Bearer abc.def.ghi")
	assert.ErrorIs(t, err, middleware.ErrJWTNotConfigured)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return router
}

func TestAuth(t *testing.T) {
	authenticator, err := middleware.NewAuthenticator(middleware.AuthConfig{APIKeys: []string{"secret"}})
	require.NoError(t, err)
	router := newRouter(middleware.Auth(authenticator))

	t.Run("rejects missing credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"unauthorized"`)
	})

	t.Run("accepts api key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set("Authorization", "ApiKey secret")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuth_Disabled(t *testing.T) {
	authenticator, err := middleware.NewAuthenticator(middleware.AuthConfig{})
	require.NoError(t, err)
	assert.False(t, authenticator.Enabled())

	w := httptest.NewRecorder()
	newRouter(middleware.Auth(authenticator)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID(t *testing.T) {
	router := newRouter(middleware.RequestID())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.NotEmpty(t, w.Header().Get(middleware.REQUEST_ID_HEADER))

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(middleware.REQUEST_ID_HEADER, "abc")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(middleware.REQUEST_ID_HEADER))
}

func TestRecovery(t *testing.T) {
	router := newRouter(middleware.Recovery(), middleware.Logger())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"internal_error"`)
}
