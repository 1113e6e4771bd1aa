package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestPeek(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := mintToken(t, jwt.MapClaims{
		"username": "demo",
		"role":     "tourist",
		"exp":      exp.Unix(),
	})

	claims, err := Peek(raw)
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if claims.Username != "demo" || claims.Role != "tourist" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if !claims.ExpiresAt.Equal(exp) {
		t.Fatalf("expected exp %v, got %v", exp, claims.ExpiresAt)
	}
	if claims.Expired() {
		t.Fatalf("future token reported expired")
	}
}

func TestPeek_ExpiredToken(t *testing.T) {
	raw := mintToken(t, jwt.MapClaims{
		"username": "demo",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	claims, err := Peek(raw)
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if !claims.Expired() {
		t.Fatalf("past token not reported expired")
	}
}

func TestPeek_NoExpiry(t *testing.T) {
	raw := mintToken(t, jwt.MapClaims{"username": "demo"})

	claims, err := Peek(raw)
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if !claims.ExpiresAt.IsZero() {
		t.Fatalf("expected zero expiry, got %v", claims.ExpiresAt)
	}
	if claims.Expired() {
		t.Fatalf("token without exp reported expired")
	}
}

func TestPeek_OpaqueToken(t *testing.T) {
	if _, err := Peek("just-an-opaque-string"); err != ErrNotAJWT {
		t.Fatalf("expected ErrNotAJWT, got %v", err)
	}
}
