package middleware

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal"

// Principal is the verified identity attached to a request.
type Principal struct {
	ID       string
	Username string
	Email    string
	Role     string
}

// OptionalAuth attaches a Principal to the request when a valid bearer token
// is present and does nothing otherwise. It never rejects: public routes stay
// public whether or not the client sent (or botched) a token.
func OptionalAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if p, err := principalFromHeader(c.Get("Authorization"), secret); err == nil {
			c.Locals(principalKey, p)
		}
		return c.Next()
	}
}

// RequireAuth rejects the request with 401 unless a valid bearer token is
// presented. Routes behind it can rely on PrincipalFromCtx succeeding.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principalFromHeader(c.Get("Authorization"), secret)
		if err != nil {
			log.Printf("[AUTH] rejected %s %s: %v", c.Method(), c.Path(), err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Not authenticated",
			})
		}
		c.Locals(principalKey, p)
		return c.Next()
	}
}

// PrincipalFromCtx returns the verified principal, if any middleware attached one.
func PrincipalFromCtx(c *fiber.Ctx) (*Principal, bool) {
	p, ok := c.Locals(principalKey).(*Principal)
	return p, ok
}

func principalFromHeader(header, secret string) (*Principal, error) {
	raw := strings.TrimSpace(header)
	if raw == "" {
		return nil, fmt.Errorf("missing authorization header")
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		raw = strings.TrimSpace(raw[7:])
	}
	if raw == "" {
		return nil, fmt.Errorf("missing bearer token")
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return &Principal{
		ID:       claimString(claims, "id"),
		Username: claimString(claims, "username"),
		Email:    claimString(claims, "email"),
		Role:     claimString(claims, "role"),
	}, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
