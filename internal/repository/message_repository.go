package repository

import (
	"context"

	"gorm.io/gorm"

	"lagtalk/internal/model"
)

// MessageRepository persists direct messages.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	Conversation(ctx context.Context, userA, userB string, skip, limit int) ([]model.Message, error)
	MarkRead(ctx context.Context, recipientID, senderID string) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository builds a GORM-backed message repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) Conversation(ctx context.Context, userA, userB string, skip, limit int) ([]model.Message, error) {
	var messages []model.Message
	q := r.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)", userA, userB, userB, userA).
		Order("created_at DESC").
		Offset(skip)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, recipientID, senderID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("recipient_id = ? AND sender_id = ? AND is_read = ?", recipientID, senderID, false).
		Update("is_read", true).Error
}
