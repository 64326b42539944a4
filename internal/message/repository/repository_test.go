package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	Message "github.com/GolfPlayed/talk/internal/message/model"
	User "github.com/GolfPlayed/talk/internal/user/model"
	appErrors "github.com/GolfPlayed/talk/pkg/errors"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:?cache=shared")
	if err != nil {
		log.Fatalf("failed to open sqlite: %v", err)
	}
	sqldb.SetMaxOpenConns(1)
	testDB = bun.NewDB(sqldb, sqlitedialect.New())

	tables := []any{
		(*User.User)(nil),
		(*Message.Message)(nil),
	}
	ctx := context.Background()
	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func resetMessages(t *testing.T) {
	t.Helper()
	_, err := testDB.ExecContext(context.Background(), "DELETE FROM messages")
	require.NoError(t, err)
}

func seedMessage(t *testing.T, repo *MessageRepository, conversationID, senderID int64, body string) *Message.Message {
	t.Helper()
	now := time.Now()
	msg := &Message.Message{
		ConversationID: conversationID,
		UserID:         senderID,
		Message:        body,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, repo.Create(context.Background(), msg))
	require.NotZero(t, msg.ID)
	return msg
}

func windowIDs(t *testing.T, repo *MessageRepository, conversationID, afterID int64, offset, limit int) []int64 {
	t.Helper()
	msgs, err := repo.ListWindow(context.Background(), conversationID, afterID, offset, limit)
	require.NoError(t, err)
	ids := make([]int64, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	return ids
}

func Test_ListWindow_WatermarkIsFixedLowerBound(t *testing.T) {
	t.Cleanup(func() { resetMessages(t) })
	repo := NewMessageRepository(testDB, nil)

	var ids []int64
	for i := 0; i < 5; i++ {
		ids = append(ids, seedMessage(t, repo, 1, 1, "hello").ID)
	}
	watermark := ids[2]

	got := windowIDs(t, repo, 1, watermark, 0, 0)
	assert.Equal(t, []int64{ids[3], ids[4]}, got)

	// New arrivals above the watermark show up; everything at or below it
	// stays hidden forever.
	late := seedMessage(t, repo, 1, 2, "late")
	got = windowIDs(t, repo, 1, watermark, 0, 0)
	assert.Equal(t, []int64{ids[3], ids[4], late.ID}, got)

	// Paging never leaks below the bound either.
	got = windowIDs(t, repo, 1, watermark, 1, 1)
	assert.Equal(t, []int64{ids[4]}, got)
}

func Test_ListWindow_UnknownConversationIsEmpty(t *testing.T) {
	t.Cleanup(func() { resetMessages(t) })
	repo := NewMessageRepository(testDB, nil)

	msgs, err := repo.ListWindow(context.Background(), 404, 0, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func Test_ListWindow_InsertionOrder(t *testing.T) {
	t.Cleanup(func() { resetMessages(t) })
	repo := NewMessageRepository(testDB, nil)

	first := seedMessage(t, repo, 1, 1, "a")
	second := seedMessage(t, repo, 1, 2, "b")
	third := seedMessage(t, repo, 1, 1, "c")

	got := windowIDs(t, repo, 1, 0, 0, 0)
	assert.Equal(t, []int64{first.ID, second.ID, third.ID}, got)

	got = windowIDs(t, repo, 1, 0, 1, 1)
	assert.Equal(t, []int64{second.ID}, got)
}

func Test_LatestVisible_PerSideDeletion(t *testing.T) {
	t.Cleanup(func() { resetMessages(t) })
	repo := NewMessageRepository(testDB, nil)
	ctx := context.Background()

	older := seedMessage(t, repo, 1, 1, "older")
	newest := seedMessage(t, repo, 1, 1, "newest")

	// Sender deletes their copy of the newest message; the receiver still
	// sees it, the sender falls back to the older one.
	require.NoError(t, repo.SetSideDeleted(ctx, newest.ID, true))

	got, err := repo.LatestVisible(ctx, 1, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, older.ID, got.ID)

	got, err = repo.LatestVisible(ctx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, newest.ID, got.ID)
}

func Test_LatestVisible_EmptyConversation(t *testing.T) {
	t.Cleanup(func() { resetMessages(t) })
	repo := NewMessageRepository(testDB, nil)

	got, err := repo.LatestVisible(context.Background(), 77, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func Test_CountUnread(t *testing.T) {
	t.Cleanup(func() { resetMessages(t) })
	repo := NewMessageRepository(testDB, nil)
	ctx := context.Background()

	// Five messages: two unseen from the other party, one unseen from the
	// querying user, two already seen.
	seedMessage(t, repo, 1, 2, "unseen from peer")
	seedMessage(t, repo, 1, 2, "another unseen from peer")
	seedMessage(t, repo, 1, 1, "own unseen message")
	seen1 := seedMessage(t, repo, 1, 2, "seen")
	seen2 := seedMessage(t, repo, 1, 2, "also seen")
	require.NoError(t, repo.MarkSeen(ctx, seen1.ID))
	require.NoError(t, repo.MarkSeen(ctx, seen2.ID))

	unread, err := repo.CountUnread(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, unread)
}

func Test_CountUnread_SkipsReceiverDeleted(t *testing.T) {
	t.Cleanup(func() { resetMessages(t) })
	repo := NewMessageRepository(testDB, nil)
	ctx := context.Background()

	kept := seedMessage(t, repo, 1, 2, "kept")
	hidden := seedMessage(t, repo, 1, 2, "hidden")
	require.NoError(t, repo.SetSideDeleted(ctx, hidden.ID, false))

	unread, err := repo.CountUnread(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)
	_ = kept
}

func Test_MaxID(t *testing.T) {
	t.Cleanup(func() { resetMessages(t) })
	repo := NewMessageRepository(testDB, nil)
	ctx := context.Background()

	got, err := repo.MaxID(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, got)

	seedMessage(t, repo, 1, 1, "a")
	newest := seedMessage(t, repo, 1, 2, "b")

	got, err = repo.MaxID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, newest.ID, got)
}

func Test_MarkSeen_Missing(t *testing.T) {
	t.Cleanup(func() { resetMessages(t) })
	repo := NewMessageRepository(testDB, nil)

	err := repo.MarkSeen(context.Background(), 12345)
	assert.ErrorIs(t, err, appErrors.ErrMessageNotFound)
}
