package controllers

import (
	"net/http"

	"github.com/namratah118/trykymi/config"
	"github.com/namratah118/trykymi/models"

	"github.com/gin-gonic/gin"
)

type UserController struct{}

func (uc *UserController) GetUser(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("user lookup failed", "error", err, "uid", uid)
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"avatar":   user.Avatar,
		},
	})
}
