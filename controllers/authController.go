package controllers

import (
	"net/http"

	"github.com/RedBeret/ChatPoweredEcommerce/models"
	"github.com/RedBeret/ChatPoweredEcommerce/services"
	"github.com/RedBeret/ChatPoweredEcommerce/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthController serves account management (/user_auth) and the session
// endpoints (/login, /logout, /check_session).
type AuthController struct {
	accounts      *services.AccountService
	sessions      *services.SessionService
	secureCookies bool
	log           zerolog.Logger
}

func NewAuthController(accounts *services.AccountService, sessions *services.SessionService, secureCookies bool, log zerolog.Logger) *AuthController {
	return &AuthController{accounts: accounts, sessions: sessions, secureCookies: secureCookies, log: log}
}

// Register creates a new account and logs it in immediately.
func (c *AuthController) Register(ctx *gin.Context) {
	var input models.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	view, token, err := c.accounts.Register(input)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	setSessionCookie(ctx, token, c.secureCookies)
	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "User created and logged in successfully",
		"user":    view,
	})
}

// ListAccounts returns id/username/email for every account, never the digest.
func (c *AuthController) ListAccounts(ctx *gin.Context) {
	views, err := c.accounts.List()
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}
	if views == nil {
		views = []models.AccountView{}
	}
	ctx.JSON(http.StatusOK, views)
}

// DeleteAccount removes an account by credential and invalidates its
// sessions.
func (c *AuthController) DeleteAccount(ctx *gin.Context) {
	var input models.DeleteAccountInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgMissingCredentials)
		return
	}

	if err := c.accounts.Delete(input); err != nil {
		respondError(ctx, c.log, err)
		return
	}

	clearSessionCookie(ctx, c.secureCookies)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var input models.ChangePasswordInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := c.accounts.ChangePassword(input); err != nil {
		respondError(ctx, c.log, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input models.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgMissingCredentials)
		return
	}

	view, token, err := c.sessions.Login(input)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	setSessionCookie(ctx, token, c.secureCookies)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  "Login successful",
		"user_id":  view.ID,
		"username": view.Username,
		"email":    view.Email,
	})
}

// Logout is idempotent; a request without a session still succeeds.
func (c *AuthController) Logout(ctx *gin.Context) {
	token, _ := ctx.Cookie(session.CookieName)
	c.sessions.Logout(token)
	clearSessionCookie(ctx, c.secureCookies)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Logout successful"})
}

// CheckSession reports the session state without mutating it, except that a
// session referencing a deleted account is dropped and reported as stale.
func (c *AuthController) CheckSession(ctx *gin.Context) {
	token, _ := ctx.Cookie(session.CookieName)

	result, err := c.sessions.Check(token)
	if err != nil {
		respondError(ctx, c.log, err)
		return
	}

	if result.Stale {
		clearSessionCookie(ctx, c.secureCookies)
		sendJSONResponse(ctx, http.StatusNotFound, gin.H{
			"authenticated": false,
			"message":       "User not found",
		})
		return
	}
	if !result.Authenticated {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"authenticated": false})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"authenticated": true,
		"id":            result.Account.ID,
		"username":      result.Account.Username,
		"email":         result.Account.Email,
	})
}
