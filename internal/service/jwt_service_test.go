package service

import (
	"errors"
	"testing"
	"time"

	"admin-auth/internal/domain"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := NewJWTService("secret", 8*time.Hour)

	token, err := svc.GenerateSessionToken(domain.User{Email: "admin@example.com", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := svc.ParseSessionToken(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Email != "admin@example.com" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt == nil {
		t.Fatalf("expected expiry claim")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 7*time.Hour+59*time.Minute || ttl > 8*time.Hour+time.Minute {
		t.Fatalf("expected ~8h expiry, got %v", ttl)
	}
}

func TestJWTServiceRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	other := NewJWTService("another", time.Hour)

	token, err := svc.GenerateSessionToken(domain.User{Email: "admin@example.com", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := other.ParseSessionToken(token); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid, got %v", err)
	}
}

func TestJWTServiceRejectsExpired(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	svc.sessionTTL = -time.Minute

	token, err := svc.GenerateSessionToken(domain.User{Email: "admin@example.com", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := svc.ParseSessionToken(token); !errors.Is(err, ErrJWTExpired) {
		t.Fatalf("expected ErrJWTExpired, got %v", err)
	}
}

func TestJWTServiceRejectsGarbage(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	for _, token := range []string{"", "   ", "not-a-jwt"} {
		if _, err := svc.ParseSessionToken(token); !errors.Is(err, ErrJWTInvalid) {
			t.Fatalf("expected ErrJWTInvalid for %q, got %v", token, err)
		}
	}
}

func TestJWTServiceEmptySecret(t *testing.T) {
	svc := NewJWTService("", time.Hour)
	if _, err := svc.GenerateSessionToken(domain.User{Email: "admin@example.com", Role: domain.RoleAdmin}); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid without secret, got %v", err)
	}
}
