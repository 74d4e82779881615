package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"autismcare_backend/internals/features/users/auth/dto"
	"autismcare_backend/internals/features/users/auth/service"
	userDTO "autismcare_backend/internals/features/users/user/dto"
	helper "autismcare_backend/internals/helpers"
)

type AuthController struct {
	Tokens *service.TokenService
	Log    *zap.Logger
}

func NewAuthController(tokens *service.TokenService, log *zap.Logger) *AuthController {
	return &AuthController{Tokens: tokens, Log: log}
}

// POST /token/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	u, pair, err := ac.Tokens.Login(helper.ReqCtx(c), req.Username, req.Password, service.ClientMeta{
		UserAgent: c.Get(fiber.HeaderUserAgent),
		IP:        c.IP(),
	})
	if err != nil {
		return ac.fail(c, err)
	}
	return helper.JsonOK(c, dto.LoginResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
		User:    userDTO.ToUserResponse(u),
	})
}

// POST /token/refresh
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	access, err := ac.Tokens.Refresh(helper.ReqCtx(c), req.Refresh)
	if err != nil {
		return ac.fail(c, err)
	}
	return helper.JsonOK(c, dto.AccessResponse{Access: access})
}

// POST /token/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	if err := ac.Tokens.Logout(helper.ReqCtx(c), req.Refresh, helper.GetRawAccessToken(c)); err != nil {
		return ac.fail(c, err)
	}
	return helper.JsonMessage(c, "Logout successful")
}

func (ac *AuthController) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return helper.JsonError(c, fiber.StatusUnauthorized, "No active account found with the given credentials")
	case errors.Is(err, service.ErrTokenBlacklisted):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token is blacklisted")
	case errors.Is(err, service.ErrInvalidToken):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token is invalid or expired")
	default:
		return helper.HandleError(c, ac.Log, err)
	}
}
