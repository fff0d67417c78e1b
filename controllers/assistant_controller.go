package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/namratah118/trykymi/config"
	"github.com/namratah118/trykymi/models"
	"github.com/namratah118/trykymi/services"
	"github.com/namratah118/trykymi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// summaryTTL bounds how long a conversation summary lives in Redis.
const summaryTTL = 7 * 24 * time.Hour

// AssistantController exposes the conversational assistant and plan
// generation.
type AssistantController struct {
	assistantService *services.AssistantService
}

func NewAssistantController(assistantService *services.AssistantService) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

// Chat answers one conversation turn. The reply is persisted to
// chat_messages and the rolling summary is refreshed in the background.
func (ac *AssistantController) Chat(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sessionID := fmt.Sprintf("%s_chat", uid)

	summary, err := config.RedisClient.Get(c.Request.Context(), sessionID).Result()
	if err != nil && err != redis.Nil {
		config.Logger.Errorw("conversation summary fetch failed", "error", err, "sessionID", sessionID)
	}

	reply, err := ac.assistantService.ChatReply(c.Request.Context(), req.Message, req.History, summary)
	if err != nil {
		config.Logger.Errorw("chat reply failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process chat: " + err.Error()})
		return
	}

	now := time.Now()
	turns := []models.ChatMessage{
		{ID: utils.GenerateID(), UserID: uid, Role: "user", Content: req.Message, CreatedAt: now},
		{ID: utils.GenerateID(), UserID: uid, Role: "assistant", Content: reply, CreatedAt: now},
	}
	if err := config.DB.Create(&turns).Error; err != nil {
		config.Logger.Errorw("chat message insert failed", "error", err, "uid", uid)
	}

	// fold the exchange into the cached summary off the request path
	latest := fmt.Sprintf("user: %s\nassistant: %s", req.Message, reply)
	ac.assistantService.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		updated, err := ac.assistantService.SummarizeConversation(ctx, latest, summary)
		if err != nil {
			config.Logger.Errorw("conversation summary update failed", "error", err, "sessionID", sessionID)
			return
		}
		if err := config.RedisClient.Set(ctx, sessionID, updated, summaryTTL).Err(); err != nil {
			config.Logger.Errorw("conversation summary store failed", "error", err, "sessionID", sessionID)
		}
	})

	c.JSON(http.StatusOK, models.ChatResponse{Message: reply})
}

// GeneratePlan asks the assistant for a structured daily plan. Malformed
// model output degrades to an empty list; nothing is persisted until the
// user accepts the items.
func (ac *AssistantController) GeneratePlan(c *gin.Context) {
	if _, ok := currentUID(c); !ok {
		return
	}

	var req models.PlanGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	items := ac.assistantService.GeneratePlan(c.Request.Context(), req.Message)

	c.JSON(http.StatusOK, models.PlanGenerateResponse{Items: items})
}

// History returns the stored conversation, oldest first.
func (ac *AssistantController) History(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	var messages []models.ChatMessage
	if err := config.DB.Where("user_id = ?", uid).Order("created_at asc").Limit(200).Find(&messages).Error; err != nil {
		config.Logger.Errorw("chat history fetch failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
