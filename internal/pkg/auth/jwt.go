package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/apperrors"
)

// JWTConfig defines demo token settings
type JWTConfig struct {
	SecretKey   string
	TokenExp    time.Duration
	TokenIssuer string
}

// JWTService issues and verifies the demo tokens the frontend keeps in
// local storage. Tokens identify a viewer; no route requires one.
type JWTService struct {
	config JWTConfig
	now    func() time.Time
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		config: config,
		now:    time.Now,
	}
}

// Claims defines demo token content
type Claims struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	UserType string `json:"userType"`
	College  string `json:"college,omitempty"`
	jwt.RegisteredClaims
}

// Identity returns the viewer identity carried by the claims
func (c *Claims) Identity() models.ViewerIdentity {
	return models.ViewerIdentity{
		Name:     c.Name,
		UserType: c.UserType,
		College:  c.College,
	}
}

// GenerateToken signs a demo token for the given identity and returns it with
// its lifetime in seconds
func (s *JWTService) GenerateToken(identity models.ViewerIdentity, email string) (string, int, error) {
	issuedAt := s.now()

	claims := &Claims{
		Name:     identity.Name,
		Email:    email,
		UserType: identity.UserType,
		College:  identity.College,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.TokenExp)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.config.TokenIssuer,
			Subject:   identity.Name,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign demo token: %w", err)
	}

	return signed, int(s.config.TokenExp.Seconds()), nil
}

// ValidateToken parses a demo token and returns its claims
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	}, jwt.WithIssuer(s.config.TokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Name == "" {
		return nil, apperrors.ErrTokenInvalid
	}
	return claims, nil
}
