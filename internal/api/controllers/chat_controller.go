package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venuehub/internal/models/request_models"
	"venuehub/internal/services"
	"venuehub/pkg/utils"
)

type ChatController struct {
	conciergeService services.ConciergeServiceInterface
}

func NewChatController(conciergeService services.ConciergeServiceInterface) *ChatController {
	return &ChatController{
		conciergeService: conciergeService,
	}
}

func (ch *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	resp, err := ch.conciergeService.Chat(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Chat completed successfully")
}
