package models

import "gorm.io/gorm"

type ChatMessage struct {
	gorm.Model
	UserID   uint   `json:"user_id"`
	Message  string `json:"message"`
	Response string `json:"response"`
}

type ChatMessageInput struct {
	UserID  uint   `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required"`
	// Response is optional; when absent a reply is generated.
	Response string `json:"response"`
}
