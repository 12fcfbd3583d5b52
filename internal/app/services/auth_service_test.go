package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models/dto"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/apperrors"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/auth"
)

func TestAuthService_DemoLogin(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", TokenExp: time.Hour, TokenIssuer: "seswa.test"})
	svc := NewAuthService(jwtService, zerolog.New(io.Discard))

	resp, err := svc.DemoLogin(context.Background(), &dto.DemoLoginRequest{
		Name:     " Anjali ",
		UserType: "student",
		College:  "JU",
	})
	if err != nil {
		t.Fatalf("DemoLogin: %v", err)
	}
	if !resp.Success || resp.Token == "" || resp.ExpiresIn != 3600 {
		t.Errorf("unexpected response %+v", resp)
	}
	if resp.User.Name != "Anjali" {
		t.Errorf("name = %q, want trimmed", resp.User.Name)
	}

	claims, err := jwtService.ValidateToken(resp.Token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Identity() != resp.User {
		t.Errorf("claims identity = %+v, want %+v", claims.Identity(), resp.User)
	}
}

func TestAuthService_DemoLoginRequiresName(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", TokenExp: time.Hour, TokenIssuer: "seswa.test"})
	svc := NewAuthService(jwtService, zerolog.New(io.Discard))

	_, err := svc.DemoLogin(context.Background(), &dto.DemoLoginRequest{UserType: "alumni"})
	if !apperrors.IsValidationError(err) {
		t.Errorf("err = %v, want validation error", err)
	}
}
