package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vivasaude/vivasaude/pkg/coupons"
)

// Claims carries the marketplace identity of a token holder. The coupon
// audience is frozen at issuance, so every request made with a token sees
// the same coupon eligibility its role had at login.
type Claims struct {
	UserID         int    `json:"user_id"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	CouponAudience string `json:"coupon_audience"`
	jwt.RegisteredClaims
}

// GenerateJWT generates a new JWT token for the given user and role
func GenerateJWT(userID int, email, role, secret string, expirationHours int) (string, error) {
	claims := &Claims{
		UserID:         userID,
		Email:          email,
		Role:           role,
		CouponAudience: string(coupons.AudienceForRole(role)),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * time.Duration(expirationHours))),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateJWT validates a JWT token and returns the claims
func ValidateJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ValidateJWTWithBlacklist validates a JWT token and checks if it's blacklisted
func ValidateJWTWithBlacklist(ctx context.Context, tokenString, secret string, blacklist *TokenBlacklist) (*Claims, error) {
	claims, err := ValidateJWT(tokenString, secret)
	if err != nil {
		return nil, err
	}

	if blacklist != nil {
		isBlacklisted, err := blacklist.IsBlacklisted(ctx, tokenString)
		if err != nil {
			return nil, fmt.Errorf("failed to check blacklist: %w", err)
		}

		if isBlacklisted {
			return nil, fmt.Errorf("token has been revoked")
		}
	}

	return claims, nil
}
