package handlers

import (
	"net/http"

	"github.com/01moynul/shopfront-api/internal/models"
	"github.com/01moynul/shopfront-api/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterUserInput is what a client may send to create an account.
// Id, activity flag and timestamps are server-owned.
type RegisterUserInput struct {
	Username  string `json:"username" binding:"required"`
	Firstname string `json:"firstname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /account.
func (h *Handlers) Register(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input RegisterUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Create the account (hashing happens in the service) ---
	user, err := h.Users.Create(c.Request.Context(), &models.User{
		Username:  input.Username,
		Firstname: input.Firstname,
		Email:     input.Email,
	}, input.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// 3. --- Send Success Response ---
	// Only the public fields; the hash never leaves the server.
	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

// Login handles POST /token. Unknown email, wrong password and an inactive
// account all answer 401.
func (h *Handlers) Login(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Check credentials ---
	result, err := h.Users.ValidateCredentials(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	switch result.Status {
	case services.Authenticated:
	case services.Inactive:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account is inactive"})
		return
	default:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	// 3. --- Issue the token ---
	token, err := h.Tokens.GenerateToken(result.User)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.Logger.Debug("token issued", zap.Int64("user_id", result.User.ID))
	c.JSON(http.StatusOK, gin.H{"token": token})
}
