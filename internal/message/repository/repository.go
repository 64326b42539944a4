package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/GolfPlayed/talk/internal/message"
	Message "github.com/GolfPlayed/talk/internal/message/model"
	appErrors "github.com/GolfPlayed/talk/pkg/errors"
	"github.com/GolfPlayed/talk/pkg/logger"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type MessageRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewMessageRepository(db *bun.DB, logger *logger.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		logger: logger,
	}
}

var _ message.MessageRepository = (*MessageRepository)(nil)

func (r *MessageRepository) Create(ctx context.Context, msg *Message.Message) error {
	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "msgRepo.Create.Insert: ")
	}
	return nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*Message.Message, error) {

	msg := new(Message.Message)
	err := r.db.NewSelect().Model(msg).Where("m.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "msgRepo.GetByID.Scan: ")
	}
	return msg, nil
}

func (r *MessageRepository) ListWindow(ctx context.Context, conversationID, afterID int64, offset, limit int) ([]*Message.Message, error) {

	var msgs []*Message.Message
	q := r.db.NewSelect().Model(&msgs).
		Where("m.conversation_id = ?", conversationID)
	if afterID > 0 {
		// Fixed lower bound left by a history clear; never revisited.
		q = q.Where("m.id > ?", afterID)
	}
	q = q.Order("m.id ASC")
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "msgRepo.ListWindow.Scan: ")
	}
	return msgs, nil
}

func (r *MessageRepository) Latest(ctx context.Context, conversationID int64) (*Message.Message, error) {

	msg := new(Message.Message)
	err := r.db.NewSelect().Model(msg).
		Where("m.conversation_id = ?", conversationID).
		Order("m.id DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "msgRepo.Latest.Scan: ")
	}
	return msg, nil
}

func (r *MessageRepository) LatestVisible(ctx context.Context, conversationID, userID int64) (*Message.Message, error) {

	msg := new(Message.Message)
	err := r.db.NewSelect().Model(msg).
		Where("m.conversation_id = ?", conversationID).
		WhereGroup(" AND ", visibleTo(userID)).
		Order("m.id DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "msgRepo.LatestVisible.Scan: ")
	}
	return msg, nil
}

func (r *MessageRepository) CountUnread(ctx context.Context, conversationID, userID int64) (int, error) {
	count, err := r.db.NewSelect().
		Model((*Message.Message)(nil)).
		Where("m.conversation_id = ?", conversationID).
		Where("m.is_seen = ?", false).
		Where("m.user_id != ?", userID).
		Where("m.deleted_from_receiver = ?", false).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "msgRepo.CountUnread.Count: ")
	}
	return count, nil
}

func (r *MessageRepository) MaxID(ctx context.Context, conversationID int64) (int64, error) {

	var maxID sql.NullInt64
	err := r.db.NewSelect().
		Model((*Message.Message)(nil)).
		ColumnExpr("MAX(m.id)").
		Where("m.conversation_id = ?", conversationID).
		Scan(ctx, &maxID)
	if err != nil {
		return 0, errors.Wrap(err, "msgRepo.MaxID.Scan: ")
	}
	return maxID.Int64, nil
}

func (r *MessageRepository) MarkSeen(ctx context.Context, id int64) error {
	res, err := r.db.NewUpdate().
		Model((*Message.Message)(nil)).
		Set("is_seen = ?", true).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "msgRepo.MarkSeen.Update: ")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepository) SetSideDeleted(ctx context.Context, id int64, senderSide bool) error {
	column := "deleted_from_receiver"
	if senderSide {
		column = "deleted_from_sender"
	}
	res, err := r.db.NewUpdate().
		Model((*Message.Message)(nil)).
		Set("? = ?", bun.Ident(column), true).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "msgRepo.SetSideDeleted.Update: ")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.ErrMessageNotFound
	}
	return nil
}

// visibleTo filters by the per-side deletion flags: the sender keeps seeing a
// message unless deleted_from_sender, everyone else unless
// deleted_from_receiver.
func visibleTo(userID int64) func(q *bun.SelectQuery) *bun.SelectQuery {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			WhereGroup("", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.
					Where("m.user_id = ?", userID).
					Where("m.deleted_from_sender = ?", false)
			}).
			WhereGroup(" OR ", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.
					Where("m.user_id != ?", userID).
					Where("m.deleted_from_receiver = ?", false)
			})
	}
}
