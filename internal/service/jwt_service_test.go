package service

import (
	"errors"
	"testing"
	"time"

	"fitcoach/internal/domain"
)

func testTrainer() domain.Trainer {
	return domain.Trainer{
		ID:    "t1",
		Email: "coach@example.com",
		Name:  "Coach",
	}
}

func TestJWTService_GenerateAndParse(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute, time.Hour)

	pair, err := svc.GeneratePair(testTrainer())
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}
	if pair.ExpiresIn != 60 {
		t.Fatalf("expected expires_in 60, got %d", pair.ExpiresIn)
	}

	claims, err := svc.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.TrainerID != "t1" || claims.Email != "coach@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.TokenType != "access" {
		t.Fatalf("expected access token type, got %q", claims.TokenType)
	}
}

func TestJWTService_RefreshTokenIsNotAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute, time.Hour)

	pair, err := svc.GeneratePair(testTrainer())
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	if _, err := svc.ParseAccessToken(pair.RefreshToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("refresh token must not pass as access token, got %v", err)
	}
}

func TestJWTService_RefreshRotatesJTI(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute, time.Hour)

	pair, err := svc.GeneratePair(testTrainer())
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	next, err := svc.RefreshPair(pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh pair: %v", err)
	}
	if next.RefreshToken == pair.RefreshToken {
		t.Fatalf("expected a rotated refresh token")
	}

	// El refresh anterior queda revocado tras la rotacion.
	if _, err := svc.RefreshPair(pair.RefreshToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected rotated-out refresh to be rejected, got %v", err)
	}

	// El nuevo refresh sigue siendo valido.
	if _, err := svc.RefreshPair(next.RefreshToken); err != nil {
		t.Fatalf("new refresh token should work: %v", err)
	}
}

func TestJWTService_RevokeRefresh(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute, time.Hour)

	pair, err := svc.GeneratePair(testTrainer())
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	if err := svc.RevokeRefresh(pair.RefreshToken); err != nil {
		t.Fatalf("revoke refresh: %v", err)
	}
	if _, err := svc.RefreshPair(pair.RefreshToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected revoked refresh to be rejected, got %v", err)
	}
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	svc := NewJWTService("secret-a", time.Minute, time.Hour)
	other := NewJWTService("secret-b", time.Minute, time.Hour)

	pair, err := svc.GeneratePair(testTrainer())
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	if _, err := other.ParseAccessToken(pair.AccessToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected token signed with other secret to be rejected, got %v", err)
	}
}

func TestJWTService_ExpiredAccessToken(t *testing.T) {
	svc := &JWTService{
		secret:     []byte("test-secret"),
		accessTTL:  -time.Minute,
		refreshTTL: time.Hour,
		issuer:     "fitcoach",
		store:      NewMemoryRefreshTokenStore(),
	}

	pair, err := svc.GeneratePair(testTrainer())
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	if _, err := svc.ParseAccessToken(pair.AccessToken); !errors.Is(err, ErrJWTExpired) {
		t.Fatalf("expected ErrJWTExpired, got %v", err)
	}
}

func TestJWTService_EmptyTokenRejected(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute, time.Hour)

	if _, err := svc.ParseAccessToken(""); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for empty token, got %v", err)
	}
	if _, err := svc.RefreshPair("  "); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for blank refresh, got %v", err)
	}
}

func TestMemoryRefreshTokenStore_Expiry(t *testing.T) {
	store := NewMemoryRefreshTokenStore()

	if err := store.Store("jti-1", "t1", -time.Second); err != nil {
		t.Fatalf("store: %v", err)
	}
	ok, err := store.Exists("jti-1")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if ok {
		t.Fatalf("expired entry should not exist")
	}

	if err := store.Store("jti-2", "t1", time.Hour); err != nil {
		t.Fatalf("store: %v", err)
	}
	if ok, _ := store.Exists("jti-2"); !ok {
		t.Fatalf("live entry should exist")
	}
	if err := store.Revoke("jti-2"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if ok, _ := store.Exists("jti-2"); ok {
		t.Fatalf("revoked entry should not exist")
	}
}
