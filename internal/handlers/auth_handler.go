package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/salon-cloud/salon-api/internal/config"
	"github.com/salon-cloud/salon-api/internal/httperr"
	"github.com/salon-cloud/salon-api/internal/httpresp"
	"github.com/salon-cloud/salon-api/internal/models"
	"github.com/salon-cloud/salon-api/internal/repository"
	"github.com/salon-cloud/salon-api/internal/validators"
)

type AuthHandler struct {
	users  *repository.UserRepository
	config *config.Config
}

func NewAuthHandler(users *repository.UserRepository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		users:  users,
		config: cfg,
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ======================================================
// POST /auth/register
// ======================================================
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err.Error(), "Failed to register user")
		return
	}

	if req.Email != "" && !validators.IsValidEmail(req.Email) {
		httperr.BadRequest(c, "invalid email address", "Failed to register user")
		return
	}

	hash := ""
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, err.Error(), "Failed to register user")
			return
		}
		hash = string(hashed)
	}

	user, err := h.users.Create(c.Request.Context(), models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
		Name:         req.Name,
		Role:         req.Role,
	})
	if err != nil {
		writeRepoError(c, err, "Failed to register user")
		return
	}

	httpresp.Created(c, gin.H{
		"user":    sanitized(user),
		"message": "User registered successfully",
	})
}

// ======================================================
// POST /auth/login
// ======================================================
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err.Error(), "Failed to log in")
		return
	}

	user, err := h.users.FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, err.Error(), "Failed to log in")
		return
	}

	// best effort, the login still succeeds
	_ = h.users.RecordLogin(c.Request.Context(), user.ID)

	httpresp.OK(c, gin.H{
		"token": token,
		"user":  sanitized(user),
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func sanitized(user *models.User) models.User {
	out := *user
	out.PasswordHash = ""
	return out
}
