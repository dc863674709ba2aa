package auth

import (
	"testing"
	"time"

	"github.com/riftbounddb/backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:          "test-secret",
		Issuer:          "riftbound-api",
		ExpirationHours: 168,
	}
}

func TestMintAndParseSessionToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now().UTC()

	token, err := MintSessionToken(cfg, now, TokenPayload{UserID: "user-1", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseSessionToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("expected user id user-1, got %q", claims.UserID)
	}
	if claims.Email != "a@b.com" {
		t.Fatalf("expected email a@b.com, got %q", claims.Email)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("expected subject user-1, got %q", claims.Subject)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != 168*time.Hour {
		t.Fatalf("expected 7 day lifetime, got %s", ttl)
	}
}

func TestParseSessionTokenRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	backdated := time.Now().UTC().Add(-169 * time.Hour)

	token, err := MintSessionToken(cfg, backdated, TokenPayload{UserID: "user-1"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseSessionToken(cfg, token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseSessionTokenRejectsAtExpirationInstant(t *testing.T) {
	cfg := testJWTConfig()
	// Backdate the mint by exactly the TTL so ExpiresAt is "now": a token is
	// invalid at the expiration instant, not only after it.
	minted := time.Now().UTC().Add(-cfg.TokenTTL())

	token, err := MintSessionToken(cfg, minted, TokenPayload{UserID: "user-1"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseSessionToken(cfg, token); err == nil {
		t.Fatal("expected token to be rejected at its expiration instant")
	}
}

func TestParseSessionTokenRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintSessionToken(cfg, time.Now().UTC(), TokenPayload{UserID: "user-1"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	other := cfg
	other.Secret = "different-secret"
	if _, err := ParseSessionToken(other, token); err == nil {
		t.Fatal("expected signature mismatch to be rejected")
	}
}

func TestParseSessionTokenRejectsWrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	minted := cfg
	minted.Issuer = "someone-else"

	token, err := MintSessionToken(minted, time.Now().UTC(), TokenPayload{UserID: "user-1"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseSessionToken(cfg, token); err == nil {
		t.Fatal("expected issuer mismatch to be rejected")
	}
}

func TestMintSessionTokenRequiresUserID(t *testing.T) {
	if _, err := MintSessionToken(testJWTConfig(), time.Now().UTC(), TokenPayload{}); err == nil {
		t.Fatal("expected error for empty user id")
	}
}
