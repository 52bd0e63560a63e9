package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lawaware/backend/domain"
	"github.com/lawaware/backend/internal/rest/request"
)

type chatHandler struct {
	Client domain.ChatClient
}

func NewChatHandler(client domain.ChatClient) *chatHandler {
	return &chatHandler{
		Client: client,
	}
}

// Chat forwards the user's question plus the client-held history to the
// assistant API. Nothing is stored server-side.
func (h *chatHandler) Chat(c *gin.Context) {
	var req request.Chat
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "User input is required"})
		return
	}

	messages := make([]domain.ChatMessage, 0, len(req.ConversationHistory)+1)
	messages = append(messages, req.ConversationHistory...)
	messages = append(messages, domain.ChatMessage{Role: "user", Content: req.UserInput})

	answer, err := h.Client.Complete(c.Request.Context(), messages)
	if err != nil {
		logrus.Errorf("chat completion failed: %v", err)
		c.JSON(http.StatusInternalServerError, ResponseError{Message: "An error occurred while processing your request."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": answer})
}
