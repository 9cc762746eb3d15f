// Package middleware provides the authentication guards: JWT role checks
// for dashboard endpoints and the shared-secret gate for webhooks.
package middleware

import (
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"

	basehdl "fieldpulse/internal/api/base/handler"
	"fieldpulse/config"
	"fieldpulse/internal/common"
)

// Role names carried in token claims.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleSalesRep = "sales_rep"
)

// ClaimsLocalKey is the fiber.Ctx locals key holding the parsed claims.
const ClaimsLocalKey = "user_claims"

// Claims is the JWT payload issued at login.
type Claims struct {
	UserID     string `json:"userId"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmpID      string `json:"empId,omitempty"`
	EmployeeID string `json:"employeeId,omitempty"`
	jwt.StandardClaims
}

// Auth builds the authentication middleware set from configuration.
type Auth struct {
	secret []byte
}

// NewAuth creates the guard set.
func NewAuth(cfg *config.Configuration) *Auth {
	return &Auth{secret: []byte(cfg.JwtSecret)}
}

// parseToken validates the Bearer token and returns its claims.
func (a *Auth) parseToken(c fiber.Ctx) (*Claims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, common.ErrTokenMissing
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, common.ErrTokenInvalid
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return a.secret, nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}

	return claims, nil
}

// RequireRoles authenticates the request and checks the caller's role
// against the allowed set. An empty set allows any authenticated caller.
func (a *Auth) RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c fiber.Ctx) error {
		claims, err := a.parseToken(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		if len(allowed) > 0 && !allowed[claims.Role] {
			return basehdl.HandleResponse(c, nil, common.ErrForbidden)
		}

		c.Locals(ClaimsLocalKey, claims)
		return c.Next()
	}
}

// GetClaims returns the claims stored by RequireRoles.
func GetClaims(c fiber.Ctx) *Claims {
	claims, _ := c.Locals(ClaimsLocalKey).(*Claims)
	return claims
}

// ScopedEmployeeID pins a non-privileged caller to their own employee ID:
// admins and managers may query any employee, a sales rep always gets
// their own ID regardless of what the request asked for.
func ScopedEmployeeID(c fiber.Ctx, requested string) string {
	claims := GetClaims(c)
	if claims == nil {
		return requested
	}
	if claims.Role == RoleAdmin || claims.Role == RoleManager {
		return requested
	}
	if claims.EmpID != "" {
		return claims.EmpID
	}
	return claims.EmployeeID
}
