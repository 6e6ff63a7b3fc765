package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RedBeret/ChatPoweredEcommerce/models"
	"github.com/RedBeret/ChatPoweredEcommerce/store"
	"github.com/RedBeret/ChatPoweredEcommerce/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ChatController struct {
	messages *store.ChatMessageRepository
	client   *utils.ChatClient
	log      zerolog.Logger
}

func NewChatController(messages *store.ChatMessageRepository, client *utils.ChatClient, log zerolog.Logger) *ChatController {
	return &ChatController{messages: messages, client: client, log: log}
}

// CreateMessage stores a chat message. When the request carries no response
// and the completion backend is configured, a reply is generated; a backend
// failure is logged and the message is stored with an empty response.
func (c *ChatController) CreateMessage(ctx *gin.Context) {
	var input models.ChatMessageInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	response := input.Response
	if response == "" && c.client.Enabled() {
		reply, err := c.client.Complete(input.Message)
		if err != nil {
			c.log.Error().Err(err).Msg("chat completion failed")
		} else {
			response = reply
		}
	}

	message := models.ChatMessage{
		UserID:   input.UserID,
		Message:  input.Message,
		Response: response,
	}
	if err := c.messages.Create(&message); err != nil {
		c.log.Error().Err(err).Msg("failed to store chat message")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	ctx.JSON(http.StatusCreated, message)
}

func (c *ChatController) GetMessage(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("messageId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse messageId")
		return
	}

	message, err := c.messages.ByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Chat message not found")
			return
		}
		c.log.Error().Err(err).Msg("failed to fetch chat message")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, message)
}
