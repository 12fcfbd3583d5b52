package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models/dto"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/auth"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/validation"
)

const msgDemoLoginRequired = "Name and user type are required"

// AuthService issues demo identity tokens. Tokens are only used to vouch for
// a viewer's identity on join; no route requires one.
type AuthService struct {
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		jwtService: jwtService,
		logger:     logger,
	}
}

// DemoLogin signs a token carrying the supplied identity
func (s *AuthService) DemoLogin(ctx context.Context, req *dto.DemoLoginRequest) (*dto.DemoLoginResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validation.Struct(req, msgDemoLoginRequired); err != nil {
		return nil, err
	}

	identity := models.ViewerIdentity{
		Name:     strings.TrimSpace(req.Name),
		UserType: strings.TrimSpace(req.UserType),
		College:  strings.TrimSpace(req.College),
	}

	token, expiresIn, err := s.jwtService.GenerateToken(identity, strings.TrimSpace(req.Email))
	if err != nil {
		s.logger.Error().Err(err).Str("name", identity.Name).Msg("Failed to sign demo token")
		return nil, err
	}

	s.logger.Info().
		Str("name", identity.Name).
		Str("userType", identity.UserType).
		Msg("Demo token issued")

	return &dto.DemoLoginResponse{
		Success:   true,
		Token:     token,
		ExpiresIn: expiresIn,
		User:      identity,
	}, nil
}
