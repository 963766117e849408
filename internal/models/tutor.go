package models

type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

type TutorRequest struct {
	UserID              int64         `json:"user_id,omitempty"`
	UserMessage         string        `json:"user_message"`
	ConversationHistory []ChatMessage `json:"conversation_history,omitempty"`
	IsHintRequest       bool          `json:"is_hint_request,omitempty"`
}

type TutorResponse struct {
	Response string `json:"response"`
}
