package auth

import (
	"testing"
	"time"
)

func TestGenerateJWT(t *testing.T) {
	token, err := GenerateJWT(1, "test@example.com", "patient", "test-secret-key-minimum-32-characters-long", 24)
	if err != nil {
		t.Fatalf("Failed to generate JWT: %v", err)
	}

	if token == "" {
		t.Error("Token should not be empty")
	}

	if len(token) < 10 {
		t.Error("Token seems too short")
	}
}

func TestValidateJWT(t *testing.T) {
	userID := 123
	email := "test@example.com"
	role := "professional"
	secret := "test-secret-key-minimum-32-characters-long"

	token, err := GenerateJWT(userID, email, role, secret, 24)
	if err != nil {
		t.Fatalf("Failed to generate JWT: %v", err)
	}

	claims, err := ValidateJWT(token, secret)
	if err != nil {
		t.Fatalf("Failed to validate JWT: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("Expected UserID %d, got %d", userID, claims.UserID)
	}

	if claims.Email != email {
		t.Errorf("Expected Email %s, got %s", email, claims.Email)
	}

	if claims.Role != role {
		t.Errorf("Expected Role %s, got %s", role, claims.Role)
	}
}

func TestValidateJWTInvalidToken(t *testing.T) {
	secret := "test-secret-key-minimum-32-characters-long"

	_, err := ValidateJWT("invalid.token.here", secret)
	if err == nil {
		t.Error("ValidateJWT should return error for invalid token")
	}

	_, err = ValidateJWT("", secret)
	if err == nil {
		t.Error("ValidateJWT should return error for empty token")
	}
}

func TestValidateJWTWrongSecret(t *testing.T) {
	secret := "test-secret-key-minimum-32-characters-long"
	wrongSecret := "wrong-secret-key-minimum-32-characters-long"

	token, err := GenerateJWT(1, "test@example.com", "patient", secret, 24)
	if err != nil {
		t.Fatalf("Failed to generate JWT: %v", err)
	}

	_, err = ValidateJWT(token, wrongSecret)
	if err == nil {
		t.Error("ValidateJWT should return error when using wrong secret")
	}
}

func TestJWTExpiration(t *testing.T) {
	secret := "test-secret-key-minimum-32-characters-long"

	token, err := GenerateJWT(1, "test@example.com", "patient", secret, 24)
	if err != nil {
		t.Fatalf("Failed to generate JWT: %v", err)
	}

	claims, err := ValidateJWT(token, secret)
	if err != nil {
		t.Errorf("Token should be valid immediately: %v", err)
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		t.Error("Token expiration should be in the future")
	}
}

func TestGenerateJWTDifferentRoles(t *testing.T) {
	secret := "test-secret-key-minimum-32-characters-long"

	// The coupon audience is derived from the role and frozen into the token
	cases := []struct {
		role     string
		audience string
	}{
		{"patient", "patients"},
		{"professional", "professionals"},
		{"admin", "all"},
	}

	for _, tc := range cases {
		token, err := GenerateJWT(1, "test@example.com", tc.role, secret, 24)
		if err != nil {
			t.Errorf("Failed to generate JWT for role %s: %v", tc.role, err)
			continue
		}

		claims, err := ValidateJWT(token, secret)
		if err != nil {
			t.Errorf("Failed to validate JWT for role %s: %v", tc.role, err)
			continue
		}

		if claims.Role != tc.role {
			t.Errorf("Expected role %s, got %s", tc.role, claims.Role)
		}

		if claims.CouponAudience != tc.audience {
			t.Errorf("Expected coupon audience %s for role %s, got %s", tc.audience, tc.role, claims.CouponAudience)
		}
	}
}
