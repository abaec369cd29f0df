package repository

import (
	"context"

	"github.com/govseva/govseva/internal/domain"
	"gorm.io/gorm"
)

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) domain.ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Append(ctx context.Context, turn *domain.ChatTurn) error {
	return r.db.WithContext(ctx).Create(turn).Error
}

func (r *chatRepository) History(ctx context.Context, sessionID string) ([]domain.ChatTurn, error) {
	var turns []domain.ChatTurn
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&turns).Error
	if err != nil {
		return nil, err
	}
	return turns, nil
}
