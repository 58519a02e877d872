package users

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/publicvoice/api/internal/config"
	"github.com/publicvoice/api/internal/pkg/jwt"
	"github.com/publicvoice/api/internal/pkg/response"
	apperrors "github.com/publicvoice/api/pkg/errors"
)

// Handler handles authentication and profile HTTP requests
type Handler struct {
	repo   *Repository
	config *config.Config
}

func NewHandler(repo *Repository, cfg *config.Config) *Handler {
	return &Handler{repo: repo, config: cfg}
}

func (h *Handler) jwtConfig() *jwt.Config {
	cfg := jwt.DefaultConfig(h.config.JWTSecret)
	if h.config.JWTExpireHours > 0 {
		cfg.AccessExpiry = time.Duration(h.config.JWTExpireHours) * time.Hour
	}
	return cfg
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} response.SuccessResponse{data=AuthResponse}
// @Failure 409 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	if err := ValidateRegisterRequest(&req); err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	existing, err := h.repo.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to check existing users", "DATABASE_ERROR")
		return
	}
	if existing != nil {
		response.Conflict(c, "User already exists", "USER_EXISTS")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to hash password", "HASH_FAILED")
		return
	}

	user := &User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     RoleUser,
	}

	if err := h.repo.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			response.Conflict(c, "User already exists", "USER_EXISTS")
			return
		}
		response.InternalServerError(c, "Failed to create user", "DATABASE_ERROR")
		return
	}

	token, err := jwt.GenerateToken(user.ID.Hex(), user.Email, user.Role, h.jwtConfig())
	if err != nil {
		response.InternalServerError(c, "Failed to issue token", "TOKEN_FAILED")
		return
	}

	response.Created(c, AuthResponse{User: user, AccessToken: token})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} response.SuccessResponse{data=AuthResponse}
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	if err := ValidateLoginRequest(&req); err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	user, err := h.repo.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to look up user", "DATABASE_ERROR")
		return
	}
	if user == nil {
		response.Unauthorized(c, "Invalid credentials", "INVALID_CREDENTIALS")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Invalid credentials", "INVALID_CREDENTIALS")
		return
	}

	token, err := jwt.GenerateToken(user.ID.Hex(), user.Email, user.Role, h.jwtConfig())
	if err != nil {
		response.InternalServerError(c, "Failed to issue token", "TOKEN_FAILED")
		return
	}

	response.Success(c, AuthResponse{User: user, AccessToken: token})
}

// GoogleAuth godoc
// @Summary Sign in with a Google ID token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleAuthRequest true "Google ID token"
// @Success 200 {object} response.SuccessResponse{data=AuthResponse}
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/google [post]
func (h *Handler) GoogleAuth(c *gin.Context) {
	var req GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	googleUser, err := VerifyGoogleToken(c.Request.Context(), req.GoogleIDToken, h.config.GoogleClientID)
	if err != nil {
		response.Unauthorized(c, "Invalid Google token", "INVALID_GOOGLE_TOKEN")
		return
	}

	user, err := h.repo.GetUserByGoogleID(c.Request.Context(), googleUser.UID)
	if err != nil {
		response.InternalServerError(c, "Failed to look up user", "DATABASE_ERROR")
		return
	}

	if user == nil {
		// First sign-in: provision an account from the Google profile.
		user = &User{
			Username: deriveUsername(googleUser),
			Email:    googleUser.Email,
			Role:     RoleUser,
			Avatar:   googleUser.Picture,
			GoogleID: googleUser.UID,
		}
		if err := h.repo.CreateUser(c.Request.Context(), user); err != nil {
			response.Conflict(c, "Account with this email already exists", "USER_EXISTS")
			return
		}
	}

	token, err := jwt.GenerateToken(user.ID.Hex(), user.Email, user.Role, h.jwtConfig())
	if err != nil {
		response.InternalServerError(c, "Failed to issue token", "TOKEN_FAILED")
		return
	}

	response.Success(c, AuthResponse{User: user, AccessToken: token})
}

// Me godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=User}
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	response.Success(c, user)
}

func deriveUsername(g *GoogleUser) string {
	name := strings.ToLower(strings.ReplaceAll(g.Name, " ", ""))
	if name == "" {
		if at := strings.Index(g.Email, "@"); at > 0 {
			name = g.Email[:at]
		}
	}
	if len(name) > 16 {
		name = name[:16]
	}
	// Suffix the Google subject tail to dodge username collisions.
	if len(g.UID) >= 4 {
		name += g.UID[len(g.UID)-4:]
	}
	return name
}
