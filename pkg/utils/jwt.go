package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NewAccessToken signs an HS256 JWT carrying the user id and role. Expiry
// comes from JWT_EXPIRY_HOURS in config.
func NewAccessToken(secret string, userID uuid.UUID, role string, expiryHours int) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    role,
		"exp":     now.Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken validates the signature and expiry of a token and returns
// the caller identity encoded in its claims.
func ParseAccessToken(secret, tokenStr string) (Identity, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return Identity{}, fmt.Errorf("user_id claim missing")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return Identity{}, fmt.Errorf("user_id claim malformed: %w", err)
	}

	role, ok := claims["role"].(string)
	if !ok {
		return Identity{}, fmt.Errorf("role claim missing")
	}

	return Identity{UserID: userID, Role: role}, nil
}
