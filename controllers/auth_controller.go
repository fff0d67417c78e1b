package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/namratah118/trykymi/config"
	"github.com/namratah118/trykymi/models"
	"github.com/namratah118/trykymi/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthController handles email/password accounts and token issuance.
type AuthController struct{}

// Register creates an account and returns a signed token.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		config.Logger.Errorw("password hashing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	user := models.User{
		ID:           utils.GenerateID(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	// the unique index on email is the source of truth; a pre-check would
	// race with concurrent registrations
	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		config.Logger.Errorw("user creation failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		config.Logger.Errorw("token generation failed", "error", err, "uid", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{Token: token, User: user})
}

// Login verifies credentials and returns a signed token.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&user).Update("last_login", now).Error; err != nil {
		config.Logger.Errorw("last login update failed", "error", err, "uid", user.ID)
	}
	user.LastLogin = &now

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		config.Logger.Errorw("token generation failed", "error", err, "uid", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{Token: token, User: user})
}
