package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	email := "a@x.com"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, email, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	if token.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Issuer)
	}
	if token.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.Subject)
	}
	if token.Email != email {
		t.Errorf("expected email %s, got %s", email, token.Email)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, "a@x.com", tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(456)
	email := "b@x.com"
	key := "secret-key"
	duration := time.Minute * 5

	genToken, err := GenerateJWTToken(issuer, userID, email, duration, key)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %d, got %d", userID, parsedToken.UserID)
	}
	if parsedToken.Email != email {
		t.Errorf("expected email %s, got %s", email, parsedToken.Email)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, err := GenerateJWTToken("iss", 1, "a@x.com", time.Nanosecond, "key")
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "iss"); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	genToken, err := GenerateJWTToken("iss", 1, "a@x.com", time.Hour, "key-one")
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key-two", "iss"); err == nil {
		t.Error("expected error for token verified under a different key, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, err := GenerateJWTToken("iss-one", 1, "a@x.com", time.Hour, "key")
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "iss-two"); err == nil {
		t.Error("expected error for token with a different issuer, got nil")
	}
}

func TestValidateAndParseJWTToken_Tampered(t *testing.T) {
	genToken, err := GenerateJWTToken("iss", 1, "a@x.com", time.Hour, "key")
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	// flip one character in the payload segment
	tampered := []byte(genToken.SignedString)
	payloadStart := strings.Index(genToken.SignedString, ".") + 1
	if tampered[payloadStart] == 'A' {
		tampered[payloadStart] = 'B'
	} else {
		tampered[payloadStart] = 'A'
	}

	if _, err := ValidateAndParseJWTToken(string(tampered), "key", "iss"); err == nil {
		t.Error("expected error for tampered token, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.token", "key", "iss"); err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}
