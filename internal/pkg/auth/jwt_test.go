package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/apperrors"
)

func newTestService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "seswa.test",
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestService()
	identity := models.ViewerIdentity{Name: "Anjali", UserType: "student", College: "JU"}

	token, expiresIn, err := svc.GenerateToken(identity, "anjali@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateToken("Bearer " + token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Identity() != identity {
		t.Errorf("identity = %+v, want %+v", claims.Identity(), identity)
	}
	if claims.Email != "anjali@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	other := NewJWTService(JWTConfig{SecretKey: "other", TokenExp: time.Hour, TokenIssuer: "seswa.test"})
	token, _, err := other.GenerateToken(models.ViewerIdentity{Name: "X", UserType: "alumni"}, "")
	if err != nil {
		t.Fatal(err)
	}

	_, err = newTestService().ValidateToken(token)
	if !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := svc.GenerateToken(models.ViewerIdentity{Name: "X", UserType: "student"}, "")
	if err != nil {
		t.Fatal(err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(token); !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestJWTService_EmptyToken(t *testing.T) {
	if _, err := newTestService().ValidateToken("  "); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}
