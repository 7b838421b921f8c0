package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const premiumKey = "premium"

// EntitlementClaims is the token payload issued by the billing service.
type EntitlementClaims struct {
	Premium bool `json:"premium"`
	jwt.RegisteredClaims
}

// Entitlement reads an optional bearer token and records whether the caller
// holds the premium tier. No token means the free tier; a token that does
// not verify is rejected. An empty secret disables premium entirely.
func Entitlement(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(premiumKey, false)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || secret == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid authorization header format"})
			return
		}

		claims, err := ParseEntitlement(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
			return
		}

		c.Set(premiumKey, claims.Premium)
		c.Next()
	}
}

// IsPremium reports whether Entitlement marked the request as premium.
func IsPremium(c *gin.Context) bool {
	return c.GetBool(premiumKey)
}

// ParseEntitlement verifies an HS256 token and returns its claims.
func ParseEntitlement(secret, token string) (*EntitlementClaims, error) {
	claims := &EntitlementClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.New("token expired")
		}
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return claims, nil
}

// SignEntitlement issues a token for subject valid for ttl.
func SignEntitlement(secret, subject string, premium bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := EntitlementClaims{
		Premium: premium,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
