package request

import "github.com/lawaware/backend/domain"

type Chat struct {
	UserInput           string               `json:"userInput" binding:"required"`
	ConversationHistory []domain.ChatMessage `json:"conversationHistory"`
}
