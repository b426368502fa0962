package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autofixpro/workshop-system/internal/core/domain"
	"github.com/autofixpro/workshop-system/internal/core/ports"
)

// AuthHandler handles the mock sign-in.
type AuthHandler struct {
	authService ports.AuthService
	syncService ports.SyncService
}

func NewAuthHandler(authService ports.AuthService, syncService ports.SyncService) *AuthHandler {
	return &AuthHandler{authService: authService, syncService: syncService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Login signs a user in. Authentication is mock: the role comes from the
// username string and the password is accepted as-is.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	user := result.User
	h.syncService.SetCurrentUser(&user)

	return c.JSON(http.StatusOK, loginResponse{Token: result.Token, User: result.User})
}

// Logout clears the session identity from the snapshot.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204  "cleared"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.syncService.SetCurrentUser(nil)
	return c.NoContent(http.StatusNoContent)
}
