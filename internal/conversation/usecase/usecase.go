package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/GolfPlayed/talk/internal/conversation"
	Conversation "github.com/GolfPlayed/talk/internal/conversation/model"
	"github.com/GolfPlayed/talk/internal/live"
	"github.com/GolfPlayed/talk/internal/message"
	"github.com/GolfPlayed/talk/internal/user"
	appErrors "github.com/GolfPlayed/talk/pkg/errors"
	"github.com/GolfPlayed/talk/pkg/logger"
)

type ConversationUsecase struct {
	repo       conversation.ConversationRepository
	messages   message.MessageRepository
	users      user.UserRepository
	dispatcher live.Dispatcher
	logger     *logger.Logger
}

func NewConversationUsecase(
	repo conversation.ConversationRepository,
	messages message.MessageRepository,
	users user.UserRepository,
	dispatcher live.Dispatcher,
	logger *logger.Logger,
) *ConversationUsecase {
	return &ConversationUsecase{
		repo:       repo,
		messages:   messages,
		users:      users,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

var _ conversation.ConversationUsecase = (*ConversationUsecase)(nil)

func (uc *ConversationUsecase) Threads(ctx context.Context, userID int64, q conversation.ThreadQuery) ([]conversation.ThreadSummary, error) {
	removed, err := uc.repo.FullyRemovedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	participantIDs, err := uc.repo.ParticipantConversationIDs(ctx, userID, removed)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.repo.ListCandidates(ctx, conversation.ThreadCriteria{
		UserID:         userID,
		RemovedIDs:     removed,
		ParticipantIDs: participantIDs,
		Order:          q.Order,
		Offset:         q.Offset,
		Limit:          q.Limit,
	})
	if err != nil {
		return nil, err
	}

	threads := make([]conversation.ThreadSummary, 0, len(candidates))
	for _, conv := range candidates {
		summary, err := uc.summarize(ctx, conv, userID)
		if err != nil {
			return nil, err
		}
		threads = append(threads, *summary)
	}
	return threads, nil
}

func (uc *ConversationUsecase) summarize(ctx context.Context, conv *Conversation.Conversation, userID int64) (*conversation.ThreadSummary, error) {
	latest, err := uc.messages.LatestVisible(ctx, conv.ID, userID)
	if err != nil {
		return nil, err
	}
	unread, err := uc.messages.CountUnread(ctx, conv.ID, userID)
	if err != nil {
		return nil, err
	}

	summary := &conversation.ThreadSummary{
		ConversationID: conv.ID,
		Unread:         unread,
		LastMessage:    latest,
	}
	if conv.Creator != nil {
		summary.Creator = user.Summarize(conv.Creator)
	}

	if conv.Group {
		participants := make([]user.Summary, 0, len(conv.Participants))
		for _, p := range conv.Participants {
			if p.User != nil {
				participants = append(participants, user.Summarize(p.User))
			}
		}
		summary.Kind = conversation.ThreadGroup
		summary.Group = &conversation.GroupThread{
			Name:         conv.Name,
			Image:        conv.Image,
			Participants: participants,
		}
		return summary, nil
	}

	otherID := conv.UserOne
	if otherID == userID {
		otherID = conv.UserTwo
	}
	others, err := uc.users.Summaries(ctx, []int64{otherID})
	if err != nil {
		return nil, err
	}
	summary.Kind = conversation.ThreadOneToOne
	summary.OneToOne = &conversation.OneToOneThread{}
	if len(others) > 0 {
		summary.OneToOne.OtherUser = others[0]
	}
	return summary, nil
}

func (uc *ConversationUsecase) ThreadsAll(ctx context.Context, userID int64, offset, limit int) ([]conversation.ThreadMessage, error) {
	convs, err := uc.repo.ListDirectByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}

	threads := make([]conversation.ThreadMessage, 0, len(convs))
	for _, conv := range convs {
		latest, err := uc.messages.Latest(ctx, conv.ID)
		if err != nil {
			return nil, err
		}
		if latest == nil {
			continue
		}

		otherID := conv.UserOne
		if otherID == userID {
			otherID = conv.UserTwo
		}
		others, err := uc.users.Summaries(ctx, []int64{otherID})
		if err != nil {
			return nil, err
		}

		tm := conversation.ThreadMessage{Message: latest}
		if len(others) > 0 {
			tm.With = others[0]
		}
		threads = append(threads, tm)
	}
	return threads, nil
}

func (uc *ConversationUsecase) Create(ctx context.Context, cmd conversation.CreateCommand) (*conversation.ConversationDTO, error) {
	if cmd.Group {
		return uc.createGroup(ctx, cmd)
	}
	return uc.createDirect(ctx, cmd)
}

func (uc *ConversationUsecase) createDirect(ctx context.Context, cmd conversation.CreateCommand) (*conversation.ConversationDTO, error) {
	if cmd.CreatorID == cmd.PeerID {
		return nil, appErrors.ErrSamePeer
	}

	// Lookup-first dedup. Two concurrent creates can still race; the unique
	// pair index on the table is the backstop.
	existing, err := uc.repo.FindBetween(ctx, cmd.CreatorID, cmd.PeerID)
	if err != nil && !appErrors.IsNotFound(err) {
		return nil, err
	}
	if existing != 0 {
		return &conversation.ConversationDTO{
			ID:           existing,
			CreatorID:    cmd.CreatorID,
			Participants: []int64{cmd.PeerID},
		}, nil
	}

	now := time.Now()
	conv := &Conversation.Conversation{
		UserID:    cmd.CreatorID,
		UserOne:   cmd.CreatorID,
		UserTwo:   cmd.PeerID,
		Group:     false,
		Status:    Conversation.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, conv); err != nil {
		// Lost the race to a concurrent create; the other request's row wins.
		if errors.Is(err, appErrors.ErrConversationExists) {
			id, lookupErr := uc.repo.FindBetween(ctx, cmd.CreatorID, cmd.PeerID)
			if lookupErr != nil {
				return nil, lookupErr
			}
			return &conversation.ConversationDTO{
				ID:           id,
				CreatorID:    cmd.CreatorID,
				Participants: []int64{cmd.PeerID},
			}, nil
		}
		return nil, err
	}
	if err := uc.repo.AddParticipants(ctx, conv.ID, []int64{cmd.PeerID}); err != nil {
		return nil, err
	}

	uc.dispatcher.ConversationCreated(ctx, conv, []int64{cmd.PeerID})

	return &conversation.ConversationDTO{
		ID:           conv.ID,
		CreatorID:    conv.UserID,
		Participants: []int64{cmd.PeerID},
	}, nil
}

func (uc *ConversationUsecase) createGroup(ctx context.Context, cmd conversation.CreateCommand) (*conversation.ConversationDTO, error) {
	participants := make([]int64, 0, len(cmd.ParticipantIDs))
	for _, id := range cmd.ParticipantIDs {
		if id != cmd.CreatorID {
			participants = append(participants, id)
		}
	}
	if len(participants) == 0 {
		return nil, appErrors.ErrNoParticipants
	}

	now := time.Now()
	conv := &Conversation.Conversation{
		UserID:    cmd.CreatorID,
		Group:     true,
		Name:      cmd.Name,
		Image:     cmd.Image,
		Status:    Conversation.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, conv); err != nil {
		return nil, err
	}
	if err := uc.repo.AddParticipants(ctx, conv.ID, participants); err != nil {
		return nil, err
	}

	uc.dispatcher.ConversationCreated(ctx, conv, participants)

	return &conversation.ConversationDTO{
		ID:           conv.ID,
		CreatorID:    conv.UserID,
		Group:        true,
		Name:         conv.Name,
		Image:        conv.Image,
		Participants: participants,
	}, nil
}

func (uc *ConversationUsecase) ExistsAmongTwoUsers(ctx context.Context, userA, userB int64) (int64, error) {
	id, err := uc.repo.FindBetween(ctx, userA, userB)
	if err != nil {
		if appErrors.IsNotFound(err) {
			return 0, nil
		}
		return 0, err
	}
	return id, nil
}

func (uc *ConversationUsecase) ExistsByID(ctx context.Context, conversationID int64) (bool, error) {
	return uc.repo.ExistsByID(ctx, conversationID)
}

func (uc *ConversationUsecase) IsUserInConversation(ctx context.Context, conversationID, userID int64) (bool, error) {
	return uc.repo.IsUserInConversation(ctx, conversationID, userID)
}

func (uc *ConversationUsecase) Participants(ctx context.Context, conversationID int64) ([]user.Summary, error) {
	participants, err := uc.repo.Participants(ctx, conversationID, true)
	if err != nil {
		return nil, err
	}

	summaries := make([]user.Summary, 0, len(participants))
	for _, p := range participants {
		if p.User != nil {
			summaries = append(summaries, user.Summarize(p.User))
		}
	}
	return summaries, nil
}

func (uc *ConversationUsecase) Leave(ctx context.Context, conversationID, userID int64) error {
	return uc.repo.DeactivateParticipant(ctx, conversationID, userID)
}

func (uc *ConversationUsecase) Clear(ctx context.Context, conversationID, userID int64, removeMessages bool) error {
	exists, err := uc.repo.ExistsByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if !exists {
		return appErrors.ErrConversationNotFound
	}

	now := time.Now()
	remove := &Conversation.ConversationRemove{
		UserID:          userID,
		ConversationID:  conversationID,
		MessagesRemoved: removeMessages,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if removeMessages {
		watermark, err := uc.messages.MaxID(ctx, conversationID)
		if err != nil {
			return err
		}
		remove.LastMessageID = watermark
	}
	return uc.repo.UpsertRemove(ctx, remove)
}
