package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lagtalk/internal/auth"
	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/model"
	"lagtalk/internal/repository"
)

// MessageService handles direct messages between two users.
type MessageService interface {
	Send(ctx context.Context, actor *auth.Identity, recipientID, content string) (*model.Message, error)
	Conversation(ctx context.Context, actor *auth.Identity, otherID string, skip, limit int) ([]model.Message, error)
	MarkRead(ctx context.Context, actor *auth.Identity, senderID string) error
}

type messageService struct {
	messages repository.MessageRepository
	users    repository.UserRepository
}

// NewMessageService creates a new message service.
func NewMessageService(messages repository.MessageRepository, users repository.UserRepository) MessageService {
	return &messageService{messages: messages, users: users}
}

func (s *messageService) Send(ctx context.Context, actor *auth.Identity, recipientID, content string) (*model.Message, error) {
	recipient, err := s.users.FindByID(ctx, recipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup recipient: %w", err)
	}
	if !recipient.IsActive {
		return nil, apperrors.ErrUserNotFound
	}

	message := &model.Message{
		ID:          uuid.New().String(),
		SenderID:    actor.ID,
		RecipientID: recipient.ID,
		Content:     content,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

// Conversation returns the newest-first message history between the actor
// and another user.
func (s *messageService) Conversation(ctx context.Context, actor *auth.Identity, otherID string, skip, limit int) ([]model.Message, error) {
	return s.messages.Conversation(ctx, actor.ID, otherID, skip, limit)
}

// MarkRead flags every unread message from senderID to the actor as read.
func (s *messageService) MarkRead(ctx context.Context, actor *auth.Identity, senderID string) error {
	return s.messages.MarkRead(ctx, actor.ID, senderID)
}
