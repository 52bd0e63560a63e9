package domain

import "context"

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatClient talks to an external chat-completions API. The service
// keeps no conversation state; callers send the full history each time.
type ChatClient interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}
