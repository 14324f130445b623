package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"
	sc := SessionClaims{GuestID: 42, Email: "jo@example.com", Name: "Jo Smith", Picture: "https://example.com/p.png"}

	tok, err := NewAccessToken(secret, sc, 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if remaining := time.Until(tok.Exp); remaining < 14*time.Minute || remaining > 16*time.Minute {
		t.Fatalf("expiry %v not ~15 minutes out", tok.Exp)
	}

	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		t.Fatalf("parse signed token: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if got := claims["sub"].(float64); uint64(got) != sc.GuestID {
		t.Fatalf("sub = %v, want %d", got, sc.GuestID)
	}
	if claims["email"] != sc.Email || claims["name"] != sc.Name || claims["picture"] != sc.Picture {
		t.Fatalf("claims = %v", claims)
	}
}

func TestNewAccessTokenWrongSecretRejected(t *testing.T) {
	tok, err := NewAccessToken("right", SessionClaims{GuestID: 1}, 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	_, err = jwt.Parse(tok.Token, func(tk *jwt.Token) (any, error) {
		return []byte("wrong"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err == nil {
		t.Fatal("token verified with the wrong secret")
	}
}

func TestNewRefreshTokenUniqueAndHashed(t *testing.T) {
	a, err := NewRefreshToken(30)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	b, err := NewRefreshToken(30)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if a.Raw == b.Raw {
		t.Fatal("two refresh tokens are identical")
	}
	if len(a.Raw) != 96 {
		t.Fatalf("raw token length = %d, want 96", len(a.Raw))
	}
	if HashRefreshRaw(a.Raw) == a.Raw {
		t.Fatal("hash equals raw token")
	}
	if HashRefreshRaw(a.Raw) != HashRefreshRaw(a.Raw) {
		t.Fatal("hash is not deterministic")
	}
}
