package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/variohq/reno_backend/internal/apperrors"
	portssvc "github.com/variohq/reno_backend/internal/core/ports/services"
	"github.com/variohq/reno_backend/internal/dto"
	"github.com/variohq/reno_backend/internal/middleware"
	"github.com/variohq/reno_backend/internal/utils"
	"github.com/variohq/reno_backend/pkg/config"
)

// userIDCookieName pairs with the refresh token cookie so the refresh
// endpoint can identify the user without an access token.
const userIDCookieName = "uid"

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the public routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.TokenService, cfg)

	// Brute-force protection on the credential endpoint only.
	limitMiddleware := middleware.RateLimit(middleware.NewIPRateLimiter(cfg.AuthRateLimit))

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}

	registerGoogleOAuthRoutes(auth, cfg, services)
}

// issueAuthTokens generates the access/refresh pair for a user, persists the
// refresh hash and sets the auth cookies. Shared by the password login and
// the Google sign-in flows.
func issueAuthTokens(
	c *gin.Context,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	cfg *config.Config,
	user *dto.UserResponse,
) (*dto.LoginResponse, error) {
	ctx := c.Request.Context()

	domainUser, err := userService.GetUserByID(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	accessToken, _, err := tokenService.GenerateAccessToken(ctx, domainUser)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExpiry, err := tokenService.GenerateRefreshToken(ctx, domainUser)
	if err != nil {
		return nil, err
	}
	if err := userService.UpdateRefreshToken(ctx, domainUser.UserID, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		return nil, err
	}

	maxAge := int(time.Until(refreshExpiry).Seconds())
	c.SetCookie(cfg.RefreshTokenCookieName, refreshToken, maxAge, cfg.RefreshTokenCookiePath, "", cfg.IsProduction, true)
	c.SetCookie(userIDCookieName, domainUser.UserID, maxAge, cfg.RefreshTokenCookiePath, "", cfg.IsProduction, true)

	return &dto.LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User:         *user,
	}, nil
}

func (h *AuthHandler) issueTokens(c *gin.Context, user *dto.UserResponse) (*dto.LoginResponse, error) {
	return issueAuthTokens(c, h.userService, h.tokenService, h.cfg, user)
}

// Register godoc
// @Summary Register new user
// @Description Creates a new user account with email and password.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.CreateUserRequest true "User Registration Info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	newUser, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(newUser))
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT access token plus a refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		respondWithError(c, err, "Failed to log in")
		return
	}

	userResp := dto.ToUserResponse(user)
	resp, err := h.issueTokens(c, &userResp)
	if err != nil {
		respondWithError(c, err, "Failed to generate tokens")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary Refresh access token
// @Description Exchanges a valid refresh token for a new access/refresh pair. Tokens are read from the body or from the login cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest false "Refresh token"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	_ = c.ShouldBindJSON(&req)

	if req.RefreshToken == "" {
		if cookie, err := c.Cookie(h.cfg.RefreshTokenCookieName); err == nil {
			req.RefreshToken = cookie
		}
	}
	if req.UserID == "" {
		if cookie, err := c.Cookie(userIDCookieName); err == nil {
			req.UserID = cookie
		}
	}
	if req.RefreshToken == "" || req.UserID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token required"})
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), req.UserID, req.RefreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token expired"})
			return
		}
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
			return
		}
		respondWithError(c, err, "Failed to refresh token")
		return
	}

	userResp := dto.ToUserResponse(user)
	resp, err := h.issueTokens(c, &userResp)
	if err != nil {
		respondWithError(c, err, "Failed to generate tokens")
		return
	}
	c.JSON(http.StatusOK, dto.RefreshTokenResponse{
		Token:        resp.Token,
		RefreshToken: resp.RefreshToken,
	})
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the stored refresh token and clears the auth cookies.
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Failure 500 {object} ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, _ := c.Cookie(userIDCookieName)
	if userID == "" {
		if ctxUserID, ok := middleware.GetUserIDFromContext(c); ok {
			userID = ctxUserID
		}
	}

	if userID != "" {
		if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
			middleware.GetLoggerFromContext(c).Warn("Failed to clear refresh token on logout",
				slog.String("user_id", userID),
				slog.String("error", err.Error()))
		}
	}

	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
	c.SetCookie(userIDCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
	c.Status(http.StatusNoContent)
}
