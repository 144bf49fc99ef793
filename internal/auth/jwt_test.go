package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateValidate_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 12)
	token, err := svc.Generate(RoleScanner)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Role != RoleScanner {
		t.Errorf("role = %q, want %q", claims.Role, RoleScanner)
	}
	exp := claims.ExpiresAt.Time
	if until := time.Until(exp); until < 11*time.Hour || until > 13*time.Hour {
		t.Errorf("expiry %v not about 12h out", until)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", 12).Generate(RoleScanner)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := NewJWTService("secret-b", 12).Validate(token); err == nil {
		t.Error("token signed with another secret was accepted")
	}
}

func TestValidate_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", 12)
	claims := Claims{
		Role: RoleScanner,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-13 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := svc.Validate(token); err == nil {
		t.Error("expired token was accepted")
	}
}

func TestValidate_Malformed(t *testing.T) {
	svc := NewJWTService("test-secret", 12)
	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(bad); err == nil {
			t.Errorf("malformed token %q was accepted", bad)
		}
	}
}

func TestValidate_RejectsNonHMAC(t *testing.T) {
	svc := NewJWTService("test-secret", 12)
	// alg=none token with a valid-looking payload.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Role: RoleScanner}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := svc.Validate(token); err == nil {
		t.Error("unsigned token was accepted")
	}
}
