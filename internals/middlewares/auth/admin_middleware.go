// internals/middlewares/auth/admin_middleware.go
package auth

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/guipadovan/library-manager/internals/constants"
	helper "github.com/guipadovan/library-manager/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const (
	LocalRole   = "userRole"
	LocalUserID = "user_id"
)

// AdminOnly accepts a Bearer HS256 token signed with secret whose "role" claim is admin.
// An empty secret disables the guarded routes (503).
func AdminOnly(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "admin routes are disabled")
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		claims := jwt.MapClaims{}
		parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}); err != nil {
			log.Printf("[WARN] admin token rejected: %v", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized - invalid token")
		}

		role, _ := claims["role"].(string)
		if !constants.HasRole(role, constants.AdminRoles) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin("admin routes"))
		}

		c.Locals(LocalRole, constants.RoleAdmin)
		if sub, ok := claims["sub"].(string); ok {
			c.Locals(LocalUserID, sub)
		}
		return c.Next()
	}
}

// SignAdminToken issues an admin token for subject valid for ttl.
func SignAdminToken(secret, subject string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET is not set")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": constants.RoleAdmin,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", fmt.Errorf("unauthorized - no token provided")
	}

	// tolerate repeated spaces and any casing of "Bearer"
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("unauthorized - invalid token format")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", fmt.Errorf("unauthorized - empty token")
	}
	return tok, nil
}
