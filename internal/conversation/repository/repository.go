package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/GolfPlayed/talk/internal/conversation"
	Conversation "github.com/GolfPlayed/talk/internal/conversation/model"
	appErrors "github.com/GolfPlayed/talk/pkg/errors"
	"github.com/GolfPlayed/talk/pkg/logger"
	"github.com/GolfPlayed/talk/pkg/utils"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

type ConversationRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewConversationRepository(db *bun.DB, logger *logger.Logger) *ConversationRepository {
	return &ConversationRepository{
		db:     db,
		logger: logger,
	}
}

var _ conversation.ConversationRepository = (*ConversationRepository)(nil)

func (r *ConversationRepository) Create(ctx context.Context, conv *Conversation.Conversation) error {
	if !conv.Group {
		conv.UserOne, conv.UserTwo = utils.NormalizePair(conv.UserOne, conv.UserTwo)
	}
	_, err := r.db.NewInsert().Model(conv).Returning("*").Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return appErrors.ErrConversationExists
		}
		return errors.Wrap(err, "convRepo.Create.Insert: ")
	}
	return nil
}

// isUniqueViolation detects the pair-index conflict raised when two requests
// create the same direct conversation concurrently.
func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == "23505"
}

func (r *ConversationRepository) GetByID(ctx context.Context, id int64) (*Conversation.Conversation, error) {

	conv := new(Conversation.Conversation)
	err := r.db.NewSelect().Model(conv).Where("cv.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrConversationNotFound
		}
		return nil, errors.Wrap(err, "convRepo.GetByID.Scan: ")
	}
	return conv, nil
}

func (r *ConversationRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*Conversation.Conversation)(nil)).
		Where("cv.id = ?", id).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "convRepo.ExistsByID.Exists: ")
	}
	return exists, nil
}

func (r *ConversationRepository) FindBetween(ctx context.Context, userA, userB int64) (int64, error) {
	lo, hi := utils.NormalizePair(userA, userB)

	var id int64
	err := r.db.NewSelect().
		Model((*Conversation.Conversation)(nil)).
		Column("cv.id").
		Where("cv.\"group\" = ?", false).
		Where("cv.user_one = ?", lo).
		Where("cv.user_two = ?", hi).
		Limit(1).
		Scan(ctx, &id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, appErrors.ErrConversationNotFound
		}
		return 0, errors.Wrap(err, "convRepo.FindBetween.Scan: ")
	}
	return id, nil
}

func (r *ConversationRepository) IsUserInConversation(ctx context.Context, conversationID, userID int64) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*Conversation.Conversation)(nil)).
		Where("cv.id = ?", conversationID).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("cv.user_one = ?", userID).
				WhereOr("cv.user_two = ?", userID)
		}).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "convRepo.IsUserInConversation.Exists: ")
	}
	return exists, nil
}

func (r *ConversationRepository) AddParticipants(ctx context.Context, conversationID int64, userIDs []int64) error {
	if len(userIDs) == 0 {
		return nil
	}

	participants := make([]*Conversation.ConversationParticipant, 0, len(userIDs))
	for _, uid := range userIDs {
		participants = append(participants, &Conversation.ConversationParticipant{
			ConversationID: conversationID,
			UserID:         uid,
			Active:         true,
		})
	}
	_, err := r.db.NewInsert().Model(&participants).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "convRepo.AddParticipants.Insert: ")
	}
	return nil
}

func (r *ConversationRepository) IsActiveParticipant(ctx context.Context, conversationID, userID int64) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*Conversation.ConversationParticipant)(nil)).
		Where("cp.conversation_id = ?", conversationID).
		Where("cp.user_id = ?", userID).
		Where("cp.active = ?", true).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "convRepo.IsActiveParticipant.Exists: ")
	}
	return exists, nil
}

func (r *ConversationRepository) Participants(ctx context.Context, conversationID int64, activeOnly bool) ([]*Conversation.ConversationParticipant, error) {

	var participants []*Conversation.ConversationParticipant
	q := r.db.NewSelect().Model(&participants).
		Relation("User").
		Relation("User.Profile").
		Where("cp.conversation_id = ?", conversationID)
	if activeOnly {
		q = q.Where("cp.active = ?", true)
	}
	err := q.Order("cp.id ASC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "convRepo.Participants.Scan: ")
	}
	return participants, nil
}

func (r *ConversationRepository) DeactivateParticipant(ctx context.Context, conversationID, userID int64) error {
	res, err := r.db.NewUpdate().
		Model((*Conversation.ConversationParticipant)(nil)).
		Set("active = ?", false).
		Set("updated_at = ?", time.Now()).
		Where("conversation_id = ?", conversationID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "convRepo.DeactivateParticipant.Update: ")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.ErrNotParticipant
	}
	return nil
}

func (r *ConversationRepository) FullyRemovedIDs(ctx context.Context, userID int64) ([]int64, error) {

	var ids []int64
	err := r.db.NewSelect().
		Model((*Conversation.ConversationRemove)(nil)).
		Column("cr.conversation_id").
		Where("cr.user_id = ?", userID).
		Where("cr.messages_removed = ?", false).
		Scan(ctx, &ids)
	if err != nil {
		return nil, errors.Wrap(err, "convRepo.FullyRemovedIDs.Scan: ")
	}
	return ids, nil
}

func (r *ConversationRepository) ParticipantConversationIDs(ctx context.Context, userID int64, excluding []int64) ([]int64, error) {

	var ids []int64
	q := r.db.NewSelect().
		Model((*Conversation.ConversationParticipant)(nil)).
		Column("cp.conversation_id").
		Where("cp.user_id = ?", userID).
		Where("cp.active = ?", true)
	if len(excluding) > 0 {
		q = q.Where("cp.conversation_id NOT IN (?)", bun.In(excluding))
	}
	err := q.Scan(ctx, &ids)
	if err != nil {
		return nil, errors.Wrap(err, "convRepo.ParticipantConversationIDs.Scan: ")
	}
	return ids, nil
}

func (r *ConversationRepository) ListCandidates(ctx context.Context, c conversation.ThreadCriteria) ([]*Conversation.Conversation, error) {

	var convs []*Conversation.Conversation
	q := r.db.NewSelect().Model(&convs).
		Relation("Creator").
		Relation("Creator.Profile").
		Relation("Participants", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("active = ?", true)
		}).
		Relation("Participants.User").
		Relation("Participants.User.Profile").
		Where("cv.status = ?", Conversation.StatusActive).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			q = q.WhereGroup("", func(q *bun.SelectQuery) *bun.SelectQuery {
				q = q.Where("cv.user_id = ?", c.UserID)
				if len(c.RemovedIDs) > 0 {
					q = q.Where("cv.id NOT IN (?)", bun.In(c.RemovedIDs))
				}
				return q
			})
			if len(c.ParticipantIDs) > 0 {
				q = q.WhereGroup(" OR ", func(q *bun.SelectQuery) *bun.SelectQuery {
					return q.Where("cv.id IN (?)", bun.In(c.ParticipantIDs))
				})
			}
			return q
		})

	// id breaks updated_at ties so repeated reads page identically.
	if c.Order == conversation.OrderAsc {
		q = q.Order("cv.updated_at ASC", "cv.id ASC")
	} else {
		q = q.Order("cv.updated_at DESC", "cv.id DESC")
	}
	if c.Offset > 0 {
		q = q.Offset(c.Offset)
	}
	if c.Limit > 0 {
		q = q.Limit(c.Limit)
	}

	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "convRepo.ListCandidates.Scan: ")
	}
	return convs, nil
}

func (r *ConversationRepository) ListDirectByUser(ctx context.Context, userID int64, offset, limit int) ([]*Conversation.Conversation, error) {

	var convs []*Conversation.Conversation
	q := r.db.NewSelect().Model(&convs).
		Where("cv.\"group\" = ?", false).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("cv.user_one = ?", userID).
				WhereOr("cv.user_two = ?", userID)
		}).
		Order("cv.updated_at DESC", "cv.id DESC")
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "convRepo.ListDirectByUser.Scan: ")
	}
	return convs, nil
}

func (r *ConversationRepository) UpsertRemove(ctx context.Context, remove *Conversation.ConversationRemove) error {
	_, err := r.db.NewInsert().
		Model(remove).
		On("CONFLICT (user_id, conversation_id) DO UPDATE").
		Set("messages_removed = EXCLUDED.messages_removed").
		Set("last_message_id = EXCLUDED.last_message_id").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "convRepo.UpsertRemove.Insert: ")
	}
	return nil
}

func (r *ConversationRepository) GetRemove(ctx context.Context, conversationID, userID int64) (*Conversation.ConversationRemove, error) {

	remove := new(Conversation.ConversationRemove)
	err := r.db.NewSelect().Model(remove).
		Where("cr.conversation_id = ?", conversationID).
		Where("cr.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// No tombstone is the common case, not a fault.
			return nil, nil
		}
		return nil, errors.Wrap(err, "convRepo.GetRemove.Scan: ")
	}
	return remove, nil
}

func (r *ConversationRepository) Touch(ctx context.Context, conversationID int64) error {
	_, err := r.db.NewUpdate().
		Model((*Conversation.Conversation)(nil)).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", conversationID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "convRepo.Touch.Update: ")
	}
	return nil
}
