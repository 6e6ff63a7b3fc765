package controllers

import (
	"net/http"

	"github.com/RedBeret/ChatPoweredEcommerce/apperr"
	"github.com/RedBeret/ChatPoweredEcommerce/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	msgInvalidInput        = "invalid input"
	msgMissingCredentials  = "Username and password are required"
	msgInternalServerError = "Internal server error"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"error": message})
}

// respondError is the single translation point from the domain error taxonomy
// to HTTP. Infrastructure fault details are logged, never echoed.
func respondError(ctx *gin.Context, log zerolog.Logger, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("request failed")
		sendErrorResponse(ctx, status, msgInternalServerError)
		return
	}

	var payload gin.H
	if e, ok := err.(*apperr.Error); ok && len(e.Fields) > 0 {
		payload = gin.H{"errors": e.Fields}
	} else {
		payload = gin.H{"error": err.Error()}
	}
	sendJSONResponse(ctx, status, payload)
}

func setSessionCookie(ctx *gin.Context, token string, secure bool) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(session.CookieName, token, 0, "/", "", secure, true)
}

func clearSessionCookie(ctx *gin.Context, secure bool) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(session.CookieName, "", -1, "/", "", secure, true)
}
