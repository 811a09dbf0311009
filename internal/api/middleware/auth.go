package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-collectibles/internal/api/shared/errors"
	"github.com/feral-file/ff-collectibles/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
)

const (
	AuthTypeJWT    = "jwt"
	AuthTypeAPIKey = "apikey"
)

var (
	ErrMissingHeader       = errors.New("missing Authorization header")
	ErrInvalidHeader       = errors.New("invalid Authorization header format")
	ErrJWTNotConfigured    = errors.New("JWT public key not configured")
	ErrNoAPIKeysDefined    = errors.New("no API keys configured")
	ErrInvalidAPIKey       = errors.New("invalid API key")
	ErrUnsupportedAuthType = errors.New("unsupported authorization type")
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	AuthType    string
	Claims      *jwt.RegisteredClaims
	AuthSubject string
}

// Authenticator validates bearer tokens and API keys.
// The public key is parsed once, not per request.
type Authenticator struct {
	publicKey *rsa.PublicKey
	apiKeys   map[string]struct{}
}

// NewAuthenticator parses the auth configuration
func NewAuthenticator(cfg AuthConfig) (*Authenticator, error) {
	a := &Authenticator{apiKeys: make(map[string]struct{}, len(cfg.APIKeys))}
	for _, key := range cfg.APIKeys {
		if key != "" {
			a.apiKeys[key] = struct{}{}
		}
	}

	if cfg.JWTPublicKey != "" {
		publicKey, err := parseRSAPublicKey(cfg.JWTPublicKey)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		a.publicKey = publicKey
	}

	return a, nil
}

// Enabled reports whether any credential is configured.
// Without credentials the protected routes are left open.
func (a *Authenticator) Enabled() bool {
	return a.publicKey != nil || len(a.apiKeys) > 0
}

// Authenticate validates the Authorization header, either "Bearer <jwt>" or "ApiKey <key>"
func (a *Authenticator) Authenticate(authHeader string) (*AuthResult, error) {
	if authHeader == "" {
		return nil, ErrMissingHeader
	}

	authType, credentials, ok := strings.Cut(authHeader, " ")
	if !ok || credentials == "" {
		return nil, ErrInvalidHeader
	}

	switch strings.ToLower(authType) {
	case "bearer":
		claims, err := a.validateJWT(credentials)
		if err != nil {
			return nil, err
		}
		return &AuthResult{AuthType: AuthTypeJWT, Claims: claims, AuthSubject: claims.Subject}, nil

	case "apikey":
		if len(a.apiKeys) == 0 {
			return nil, ErrNoAPIKeysDefined
		}
		if _, ok := a.apiKeys[credentials]; !ok {
			return nil, ErrInvalidAPIKey
		}
		return &AuthResult{AuthType: AuthTypeAPIKey}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAuthType, authType)
	}
}

// Auth returns a gin middleware for authentication
// It supports both JWT (Bearer token) and API Key authentication
func Auth(a *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Enabled() {
			c.Next()
			return
		}

		result, err := a.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.Response{
				Error: apierrors.NewUnauthorizedError("Authentication failed", err.Error()),
			})
			return
		}

		c.Set(string(AUTH_TYPE_KEY), result.AuthType)
		if result.AuthSubject != "" {
			c.Set(string(AUTH_SUBJECT_KEY), result.AuthSubject)
		}
		logger.DebugCtx(c.Request.Context(), "Authentication successful",
			zap.String("auth_type", result.AuthType),
			zap.String("subject", result.AuthSubject),
		)

		c.Next()
	}
}

// validateJWT validates an RS-signed token, expiry and not-before are checked by the parser
func (a *Authenticator) validateJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	if a.publicKey == nil {
		return nil, ErrJWTNotConfigured
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// Try parsing as PKIX (most common format)
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Try parsing as PKCS1 format
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
