package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/variohq/reno_backend/internal/core/domain"
	portssvc "github.com/variohq/reno_backend/internal/core/ports/services"
	"github.com/variohq/reno_backend/internal/dto"
	"github.com/variohq/reno_backend/internal/middleware"
	"github.com/variohq/reno_backend/pkg/config"
)

const googleProviderName = "google"

// GoogleOAuthHandler handles Google OAuth related requests.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	cfg                *config.Config
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	cfg *config.Config,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
		cfg:                cfg,
	}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes under the
// public auth group.
func registerGoogleOAuthRoutes(auth *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(
		services.GoogleOAuthHandler,
		services.User,
		services.TokenService,
		cfg,
	)
	googleRoutes := auth.Group("/google")
	{
		googleRoutes.POST("/exchange-code", h.ExchangeCodeGoogle)
		googleRoutes.POST("/id-token", h.SignInWithIDToken)
	}
}

// ExchangeCodeRequest defines the expected JSON body for the
// /google/exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// signInFromPayload turns validated Google claims into an application login.
func (h *GoogleOAuthHandler) signInFromPayload(c *gin.Context, claims map[string]interface{}, subject string) {
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	verified, _ := claims["email_verified"].(bool)
	picture, _ := claims["picture"].(string)

	if email == "" || subject == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Essential user information missing from Google token"})
		return
	}

	user, err := h.userService.CreateOAuthUser(c.Request.Context(), googleProviderName, domain.GoogleUserInfo{
		ID:            subject,
		Email:         email,
		VerifiedEmail: verified,
		Name:          name,
		Picture:       picture,
	})
	if err != nil {
		respondWithError(c, err, "Failed to process Google sign-in")
		return
	}

	userResp := dto.ToUserResponse(user)
	resp, err := issueAuthTokens(c, h.userService, h.tokenService, h.cfg, &userResp)
	if err != nil {
		respondWithError(c, err, "Failed to generate tokens")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExchangeCodeGoogle godoc
// @Summary Exchange a Google authorization code for application tokens
// @Description Exchanges the OAuth authorization code for Google tokens, validates the ID token, creates or links the user and returns application tokens.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromContext(c)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload: " + err.Error()})
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
			return
		}
		respondWithError(c, err, "Failed to communicate with Google")
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token missing from Google's token response")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve ID token from Google"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	h.signInFromPayload(c, payload.Claims, payload.Subject)
}

// SignInWithIDToken godoc
// @Summary Sign in with a Google ID token
// @Description Validates a client-side Google ID token, creates or links the user and returns application tokens.
// @Tags oauth
// @Accept json
// @Produce json
// @Param idToken body dto.GoogleIDTokenRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/id-token [post]
func (h *GoogleOAuthHandler) SignInWithIDToken(c *gin.Context) {
	var req dto.GoogleIDTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload: " + err.Error()})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	h.signInFromPayload(c, payload.Claims, payload.Subject)
}
