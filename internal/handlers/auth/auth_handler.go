// internal/handlers/auth/auth_handler.go
package auth

import (
	"errors"
	"net/http"

	"hopegivers-web/internal/apiclient"
	"hopegivers-web/internal/domain/account"
	"hopegivers-web/internal/middleware"
	"hopegivers-web/internal/pkg/response"
	"hopegivers-web/internal/pkg/session"
	authUsecase "hopegivers-web/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *authUsecase.Service
	sessions    *session.Manager
	logger      *zap.Logger
}

func NewAuthHandler(authService *authUsecase.Service, sessions *session.Manager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// ========== Registration ==========

// Register handles donor registration (public endpoint)
func (h *AuthHandler) Register(c *gin.Context) {
	var req account.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	st := session.NewCookieStore(c.Writer, c.Request)
	result, err := h.authService.Register(c.Request.Context(), st, &req)
	if err != nil {
		h.logger.Error("registration failed",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		h.loginError(c, err, "registration failed")
		return
	}

	response.Success(c, http.StatusCreated, "registration successful", result)
}

// ========== Login ==========

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req account.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	st := session.NewCookieStore(c.Writer, c.Request)
	result, err := h.authService.Login(c.Request.Context(), st, &req)
	if err != nil {
		h.logger.Error("login failed",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		h.loginError(c, err, "login failed")
		return
	}

	h.logger.Info("user logged in",
		zap.String("user", result.User.UserName),
		zap.String("dashboard", result.DashboardPath),
	)

	response.Success(c, http.StatusOK, "login successful", result)
}

// loginError distinguishes a local persist failure from a backend rejection.
func (h *AuthHandler) loginError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, session.ErrSessionPersist) {
		response.Error(c, http.StatusInternalServerError, "failed to save session", err)
		return
	}
	response.Error(c, apiclient.HTTPStatus(err), fallback, err)
}

// ========== Session ==========

// Session reports the current session state (public endpoint). A corrupt or
// expired cookie is torn down during the lookup, so the caller always gets a
// truthful answer plus the path it should navigate to.
func (h *AuthHandler) Session(c *gin.Context) {
	st := session.NewCookieStore(c.Writer, c.Request)
	rec, ok := h.sessions.Current(st)
	if !ok {
		response.Success(c, http.StatusOK, "no active session", gin.H{
			"authenticated": false,
			"dashboardPath": session.PathLogin,
		})
		return
	}

	response.Success(c, http.StatusOK, "session active", gin.H{
		"authenticated": rec.Token != "",
		"user":          rec,
		"dashboardPath": session.DashboardFor(rec.Roles),
	})
}

// ========== Logout ==========

// Logout destroys the session and sends the browser back to the root route.
// Deliberately public: a browser with a corrupt or expired cookie can still
// log out cleanly.
func (h *AuthHandler) Logout(c *gin.Context) {
	st := session.NewCookieStore(c.Writer, c.Request)
	redirect := h.authService.Logout(c.Request.Context(), st)

	c.Redirect(http.StatusSeeOther, redirect)
}

// ========== Email Confirmation ==========

// ConfirmEmail redeems a confirmation token (public endpoint)
func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusBadRequest, "missing confirmation token", nil)
		return
	}

	st := session.NewCookieStore(c.Writer, c.Request)
	if err := h.authService.ConfirmEmail(c.Request.Context(), st, token); err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "email confirmation failed", err)
		return
	}

	response.Success(c, http.StatusOK, "email confirmed", nil)
}

// ========== Profile ==========

// GetMe returns the authoritative profile and syncs the cached session
// record with it (requires auth)
func (h *AuthHandler) GetMe(c *gin.Context) {
	st := session.NewCookieStore(c.Writer, c.Request)
	profile, err := h.authService.RefreshProfile(c.Request.Context(), st, middleware.GetToken(c))
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to load profile", err)
		return
	}

	response.Success(c, http.StatusOK, "profile retrieved", profile)
}

// UpdateProfile edits profile fields (requires auth)
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req account.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	st := session.NewCookieStore(c.Writer, c.Request)
	profile, err := h.authService.UpdateProfile(c.Request.Context(), st, middleware.GetToken(c), &req)
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "profile update failed", err)
		return
	}

	response.Success(c, http.StatusOK, "profile updated", profile)
}

// ChangePassword rotates the account password (requires auth)
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req account.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), middleware.GetToken(c), &req); err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "password change failed", err)
		return
	}

	response.Success(c, http.StatusOK, "password changed", nil)
}
