package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/GolfPlayed/talk/internal/conversation"
	Conversation "github.com/GolfPlayed/talk/internal/conversation/model"
	"github.com/GolfPlayed/talk/internal/live"
	"github.com/GolfPlayed/talk/internal/message"
	Message "github.com/GolfPlayed/talk/internal/message/model"
	"github.com/GolfPlayed/talk/internal/user"
	appErrors "github.com/GolfPlayed/talk/pkg/errors"
	"github.com/GolfPlayed/talk/pkg/logger"
)

type MessageUsecase struct {
	repo          message.MessageRepository
	conversations conversation.ConversationRepository
	users         user.UserRepository
	dispatcher    live.Dispatcher
	logger        *logger.Logger
}

func NewMessageUsecase(
	repo message.MessageRepository,
	conversations conversation.ConversationRepository,
	users user.UserRepository,
	dispatcher live.Dispatcher,
	logger *logger.Logger,
) *MessageUsecase {
	return &MessageUsecase{
		repo:          repo,
		conversations: conversations,
		users:         users,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

var _ message.MessageUsecase = (*MessageUsecase)(nil)

func (uc *MessageUsecase) Window(ctx context.Context, conversationID, userID int64, offset, limit int) (*message.Window, error) {
	remove, err := uc.conversations.GetRemove(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}

	var afterID int64
	if remove != nil && remove.MessagesRemoved {
		afterID = remove.LastMessageID
	}

	msgs, err := uc.repo.ListWindow(ctx, conversationID, afterID, offset, limit)
	if err != nil {
		return nil, err
	}

	window := &message.Window{
		Messages:   make([]message.MessageDTO, 0, len(msgs)),
		Recipients: []user.Summary{},
	}

	// Sender summaries with home-course decoration, one lookup per sender.
	senders := make(map[int64]*user.Summary)
	for _, m := range msgs {
		s, ok := senders[m.UserID]
		if !ok {
			s, err = uc.users.Summary(ctx, m.UserID)
			if err != nil {
				if !appErrors.IsNotFound(err) {
					return nil, err
				}
				s = &user.Summary{ID: m.UserID}
			}
			senders[m.UserID] = s
		}
		window.Messages = append(window.Messages, toDTO(m, *s))
	}

	recipients, err := uc.recipients(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	window.Recipients = recipients
	return window, nil
}

func (uc *MessageUsecase) WindowAll(ctx context.Context, conversationID int64, offset, limit int) (*message.Window, error) {
	exists, err := uc.conversations.ExistsByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, appErrors.ErrConversationNotFound
	}

	msgs, err := uc.repo.ListWindow(ctx, conversationID, 0, offset, limit)
	if err != nil {
		return nil, err
	}

	senderIDs := make([]int64, 0, len(msgs))
	seen := make(map[int64]struct{})
	for _, m := range msgs {
		if _, ok := seen[m.UserID]; !ok {
			seen[m.UserID] = struct{}{}
			senderIDs = append(senderIDs, m.UserID)
		}
	}
	summaries, err := uc.users.Summaries(ctx, senderIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]user.Summary, len(summaries))
	for _, s := range summaries {
		byID[s.ID] = s
	}

	window := &message.Window{
		Messages:   make([]message.MessageDTO, 0, len(msgs)),
		Recipients: []user.Summary{},
	}
	for _, m := range msgs {
		window.Messages = append(window.Messages, toDTO(m, byID[m.UserID]))
	}

	recipients, err := uc.recipients(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	window.Recipients = recipients
	return window, nil
}

func (uc *MessageUsecase) Send(ctx context.Context, cmd message.SendCommand) (*message.MessageDTO, error) {
	if strings.TrimSpace(cmd.Body) == "" {
		return nil, appErrors.ErrEmptyMessage
	}

	conv, err := uc.conversations.GetByID(ctx, cmd.ConversationID)
	if err != nil {
		return nil, err
	}
	if conv.Status != Conversation.StatusActive {
		return nil, appErrors.ErrConversationClosed
	}

	member, err := uc.isMember(ctx, conv, cmd.SenderID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, appErrors.ErrNotParticipant
	}

	now := time.Now()
	msg := &Message.Message{
		ConversationID: cmd.ConversationID,
		UserID:         cmd.SenderID,
		Message:        cmd.Body,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if err := uc.conversations.Touch(ctx, cmd.ConversationID); err != nil {
		// Ordering of the thread list degrades, the send itself is fine.
		uc.logger.Warn("message: touch conversation failed",
			"conversation_id", cmd.ConversationID, "err", err)
	}

	uc.dispatcher.MessageSent(ctx, msg)

	sender, err := uc.users.Summary(ctx, cmd.SenderID)
	if err != nil {
		if !appErrors.IsNotFound(err) {
			return nil, err
		}
		sender = &user.Summary{ID: cmd.SenderID}
	}
	dto := toDTO(msg, *sender)
	return &dto, nil
}

func (uc *MessageUsecase) MarkSeen(ctx context.Context, messageID, userID int64) error {
	msg, err := uc.repo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.UserID == userID {
		return appErrors.ErrOwnMessageSeen
	}
	return uc.repo.MarkSeen(ctx, messageID)
}

func (uc *MessageUsecase) DeleteForUser(ctx context.Context, messageID, userID int64) error {
	msg, err := uc.repo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	return uc.repo.SetSideDeleted(ctx, messageID, msg.UserID == userID)
}

// isMember accepts the creator, a direct peer, or an active group
// participant.
func (uc *MessageUsecase) isMember(ctx context.Context, conv *Conversation.Conversation, userID int64) (bool, error) {
	if conv.UserID == userID {
		return true, nil
	}
	if !conv.Group && (conv.UserOne == userID || conv.UserTwo == userID) {
		return true, nil
	}
	return uc.conversations.IsActiveParticipant(ctx, conv.ID, userID)
}

func (uc *MessageUsecase) recipients(ctx context.Context, conversationID int64) ([]user.Summary, error) {
	participants, err := uc.conversations.Participants(ctx, conversationID, false)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(participants))
	for _, p := range participants {
		ids = append(ids, p.UserID)
	}
	summaries, err := uc.users.Summaries(ctx, ids)
	if err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []user.Summary{}
	}
	return summaries, nil
}

func toDTO(m *Message.Message, sender user.Summary) message.MessageDTO {
	return message.MessageDTO{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Sender:         sender,
		Body:           m.Message,
		IsSeen:         m.IsSeen,
		CreatedAt:      m.CreatedAt,
	}
}
