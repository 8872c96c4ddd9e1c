package auth

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := "super-secret"
	userID := "user-123"

	tok, err := GenerateToken(userID, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	gotUserID, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u1", "secret", -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, "secret")
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u2", "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, "wrong-secret")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := ParseToken(tok, "secret"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", tok, err)
		}
	}
}

func TestExtractBearer(t *testing.T) {
	t.Parallel()

	cases := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Bearer   abc  ", "abc"},
		{"Basic abc", ""},
		{"Bearer", ""},
	}
	for _, tc := range cases {
		if got := ExtractBearer(tc.header); got != tc.want {
			t.Fatalf("header %q: got %q want %q", tc.header, got, tc.want)
		}
	}
}
