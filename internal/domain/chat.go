// Package domain defines the persistence entities for chat history,
// complaints, applications, and the services reference table, along with
// the repository interfaces the handlers depend on. The types are mapped
// with GORM.
package domain

import (
	"context"
	"time"
)

// ChatTurn is a single question/answer exchange within a session.
// Turns are append-only: there is no update or delete operation.
type ChatTurn struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SessionID   string    `json:"session_id" gorm:"type:text;index"`
	UserMessage string    `json:"user_message" gorm:"type:text"`
	BotMessage  string    `json:"bot_message" gorm:"type:text"`
	SourceLang  string    `json:"source_lang" gorm:"type:text"`
	TargetLang  string    `json:"target_lang" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (ChatTurn) TableName() string { return "chat_history" }

type ChatRepository interface {
	Append(ctx context.Context, turn *ChatTurn) error
	// History returns all turns of a session in insertion order.
	History(ctx context.Context, sessionID string) ([]ChatTurn, error)
}
