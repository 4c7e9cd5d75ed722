package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	token, err := SignJWT(Claims{
		Sub:   "cognito:user-1",
		Email: "jane@example.com",
		Name:  "Jane Doe",
	})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	claims, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if claims.Sub != "cognito:user-1" {
		t.Fatalf("unexpected sub: %q", claims.Sub)
	}
	if claims.Email != "jane@example.com" {
		t.Fatalf("unexpected email: %q", claims.Email)
	}
	if claims.Exp <= claims.Iat {
		t.Fatalf("expected exp after iat: %+v", claims)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	token, err := SignJWT(Claims{Sub: "cognito:user-1"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]
	if _, err := VerifyJWT(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	token, err := SignJWT(Claims{
		Sub: "cognito:user-1",
		Iat: time.Now().UTC().Add(-2 * time.Hour).Unix(),
		Exp: time.Now().UTC().Add(-time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	if _, err := VerifyJWT(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := VerifyJWT("not.a.jwt.at.all"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
