package dto

type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId,omitempty"`
}

type ChatResponse struct {
	Response       string   `json:"response"`
	Sources        []string `json:"sources"`
	ConversationID string   `json:"conversationId"`
}
