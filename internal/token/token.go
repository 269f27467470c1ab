package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-platform/internal/auth"
)

const ttl = 24 * time.Hour

// Issue signs a capability token for the actor.
func Issue(secret string, actor auth.Actor) (string, error) {
	claims := jwt.MapClaims{
		"sub":      actor.ID,
		"tenantId": actor.TenantID,
		"role":     string(actor.Role),
		"exp":      time.Now().Add(ttl).Unix(),
		"iat":      time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Verify parses and validates a token, returning the actor it encodes.
func Verify(secret, tokenString string) (auth.Actor, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !t.Valid {
		return auth.Actor{}, jwt.ErrTokenMalformed
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return auth.Actor{}, jwt.ErrTokenInvalidClaims
	}

	sub, ok1 := claims["sub"].(float64)
	tenantID, ok2 := claims["tenantId"].(float64)
	role, ok3 := claims["role"].(string)
	if !ok1 || !ok2 || !ok3 {
		return auth.Actor{}, jwt.ErrTokenInvalidClaims
	}

	return auth.Actor{
		ID:       uint(sub),
		TenantID: uint(tenantID),
		Role:     auth.Role(role),
	}, nil
}
