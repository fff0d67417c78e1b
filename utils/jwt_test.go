package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestTokenRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateToken("user-42")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "user-42" {
		t.Errorf("UserID = %q, want user-42", claims.UserID)
	}
}

func TestParseTokenBearerPrefix(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateToken("user-42")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseToken("Bearer " + token)
	if err != nil {
		t.Fatalf("ParseToken with Bearer prefix: %v", err)
	}
	if claims.UserID != "user-42" {
		t.Errorf("UserID = %q, want user-42", claims.UserID)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	InitJWT("test-secret")

	if _, err := ParseToken("not-a-token"); err == nil {
		t.Error("expected an error for a garbage token")
	}
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	InitJWT("test-secret")
	token, err := GenerateToken("user-42")
	if err != nil {
		t.Fatal(err)
	}

	InitJWT("different-secret")
	if _, err := ParseToken(token); err == nil {
		t.Error("expected an error for a token signed with another key")
	}
}

func TestParseTokenRejectsUnsignedAlg(t *testing.T) {
	InitJWT("test-secret")

	claims := &Claims{
		UserID: "user-42",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken(token); err == nil {
		t.Error("expected an error for a token with alg none")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Fatal("password stored in plaintext")
	}

	if !CheckPassword("hunter2hunter2", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
}
