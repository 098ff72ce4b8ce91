package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MounTainVSCO/oceans-api/internal/application/command"
	"github.com/MounTainVSCO/oceans-api/internal/application/interfaces"
)

type AuthHandler struct {
	authService interfaces.AuthService
}

func NewAuthHandler(authService interfaces.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var cmd command.RegisterUserCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.Register(c.Request().Context(), &cmd)
	if err != nil {
		return httpError(err)
	}

	setAuthCookie(c, result.AccessToken)
	return c.JSON(http.StatusCreated, result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.Login(c.Request().Context(), &cmd)
	if err != nil {
		return httpError(err)
	}

	setAuthCookie(c, result.AccessToken)
	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) Refresh(c echo.Context) error {
	var cmd command.RefreshSessionCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.RefreshSession(c.Request().Context(), &cmd)
	if err != nil {
		return httpError(err)
	}

	setAuthCookie(c, result.AccessToken)
	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var cmd command.ChangePasswordCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.ChangePassword(c.Request().Context(), actorId(c), &cmd)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) Me(c echo.Context) error {
	result, err := h.authService.GetProfile(c.Request().Context(), actorId(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var cmd command.UpdateProfileCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.UpdateProfile(c.Request().Context(), actorId(c), &cmd)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func setAuthCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}
