package controllers

import (
	"net/http"
	"testing"

	"github.com/namratah118/trykymi/config"
	"github.com/namratah118/trykymi/models"
	"github.com/namratah118/trykymi/utils"

	"github.com/gin-gonic/gin"
)

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	setupTestDB(t)
	utils.InitJWT("test-secret")

	ac := AuthController{}
	r := gin.New()
	r.POST("/auth/register", ac.Register)

	first := postJSON(t, r, "/auth/register", models.RegisterRequest{
		Username: "namrata",
		Email:    "namrata@example.com",
		Password: "hunter2hunter2",
	})
	if first.Code != http.StatusOK {
		t.Fatalf("first registration status = %d: %s", first.Code, first.Body.String())
	}

	second := postJSON(t, r, "/auth/register", models.RegisterRequest{
		Username: "other",
		Email:    "namrata@example.com",
		Password: "hunter2hunter2",
	})
	if second.Code != http.StatusConflict {
		t.Fatalf("duplicate registration status = %d, want 409: %s", second.Code, second.Body.String())
	}

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", "namrata@example.com").Count(&count)
	if count != 1 {
		t.Errorf("users with the email = %d, want 1", count)
	}
}
