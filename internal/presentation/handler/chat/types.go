package chat

import "github.com/govseva/govseva/internal/domain"

// chatRequest represents a chatbot question
type chatRequest struct {
	Message        string `json:"message" example:"How do I apply for a birth certificate?"`
	SessionID      string `json:"session_id,omitempty" example:"9f1c7e2ab54d4d0c8f3f7f0f3f6a1234"` // Opaque session grouping key
	SourceLanguage string `json:"source_language,omitempty" example:"hi"`                          // ISO 639-1 code; detected when absent
	TargetLanguage string `json:"target_language,omitempty" example:"hi"`                          // ISO 639-1 code; defaults to the source language
}

// chatResponse represents the chatbot's reply
type chatResponse struct {
	OK             bool   `json:"ok"`
	SessionID      string `json:"session_id"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	BotReply       string `json:"bot_reply"`
}

// historyResponse represents a session's chat history
type historyResponse struct {
	OK        bool              `json:"ok"`
	SessionID string            `json:"session_id"`
	History   []domain.ChatTurn `json:"history"`
}
