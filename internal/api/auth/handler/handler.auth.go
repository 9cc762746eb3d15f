// Package authhdl exposes the authentication endpoints.
package authhdl

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"fieldpulse/internal/api/auth/dto"
	authsvc "fieldpulse/internal/api/auth/service"
	basehdl "fieldpulse/internal/api/base/handler"
	"fieldpulse/internal/api/middleware"
	"fieldpulse/internal/common"
)

// AuthHandler serves login, registration and profile lookup.
type AuthHandler struct {
	service  *authsvc.AuthService
	validate *validator.Validate
}

// NewAuthHandler creates the handler.
func NewAuthHandler(service *authsvc.AuthService) *AuthHandler {
	return &AuthHandler{
		service:  service,
		validate: validator.New(),
	}
}

// Login authenticates and returns a token.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var req dto.LoginRequest
		if err := c.Bind().Body(&req); err != nil {
			return basehdl.HandleResponse(c, nil, common.ErrInvalidInput)
		}
		if err := h.validate.Struct(req); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, nil))
		}

		resp, err := h.service.Login(c.Context(), req)
		return basehdl.HandleResponse(c, resp, err)
	})
}

// Register creates an account. Admin only.
func (h *AuthHandler) Register(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var req dto.RegisterRequest
		if err := c.Bind().Body(&req); err != nil {
			return basehdl.HandleResponse(c, nil, common.ErrInvalidInput)
		}
		if err := h.validate.Struct(req); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, nil))
		}

		user, err := h.service.Register(c.Context(), req)
		return basehdl.HandleResponse(c, user, err)
	})
}

// Me returns the caller's own account.
func (h *AuthHandler) Me(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		}

		user, err := h.service.Me(c.Context(), claims)
		return basehdl.HandleResponse(c, user, err)
	})
}
