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

	"github.com/GolfPlayed/talk/internal/conversation"
	Conversation "github.com/GolfPlayed/talk/internal/conversation/model"
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
		(*User.Profile)(nil),
		(*User.Course)(nil),
		(*User.HomeCourse)(nil),
		(*Conversation.Conversation)(nil),
		(*Conversation.ConversationParticipant)(nil),
		(*Conversation.ConversationRemove)(nil),
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

func resetTables(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	for _, table := range []string{"messages", "conversation_removes", "conversation_participants", "conversations", "home_courses", "courses", "profiles", "users"} {
		_, err := testDB.ExecContext(ctx, "DELETE FROM "+table)
		require.NoError(t, err)
	}
}

func seedUser(t *testing.T, id int64, first, last string) {
	t.Helper()
	u := &User.User{ID: id, FirstName: first, LastName: last, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	_, err := testDB.NewInsert().Model(u).Exec(context.Background())
	require.NoError(t, err)
}

func seedDirect(t *testing.T, repo *ConversationRepository, creator, peer int64) *Conversation.Conversation {
	t.Helper()
	now := time.Now()
	conv := &Conversation.Conversation{
		UserID: creator, UserOne: creator, UserTwo: peer,
		Status: Conversation.StatusActive, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), conv))
	require.NoError(t, repo.AddParticipants(context.Background(), conv.ID, []int64{peer}))
	return conv
}

func Test_CreateAndFindBetween(t *testing.T) {
	t.Cleanup(func() { resetTables(t) })
	repo := NewConversationRepository(testDB, nil)

	conv := seedDirect(t, repo, 1, 2)
	require.NotZero(t, conv.ID)

	id, err := repo.FindBetween(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, conv.ID, id)

	// Argument order must not matter.
	id, err = repo.FindBetween(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, conv.ID, id)

	_, err = repo.FindBetween(context.Background(), 1, 3)
	assert.ErrorIs(t, err, appErrors.ErrConversationNotFound)
}

func Test_IsUserInConversation(t *testing.T) {
	t.Cleanup(func() { resetTables(t) })
	repo := NewConversationRepository(testDB, nil)

	conv := seedDirect(t, repo, 1, 2)

	for uid, want := range map[int64]bool{1: true, 2: true, 3: false} {
		got, err := repo.IsUserInConversation(context.Background(), conv.ID, uid)
		require.NoError(t, err)
		assert.Equal(t, want, got, "user %d", uid)
	}
}

func Test_ListCandidates_ExcludesFullyRemoved(t *testing.T) {
	t.Cleanup(func() { resetTables(t) })
	repo := NewConversationRepository(testDB, nil)
	ctx := context.Background()

	seedUser(t, 1, "Anna", "Birch")
	seedUser(t, 2, "Ben", "Cole")
	kept := seedDirect(t, repo, 1, 2)
	removed := seedDirect(t, repo, 1, 3)

	now := time.Now()
	require.NoError(t, repo.UpsertRemove(ctx, &Conversation.ConversationRemove{
		UserID: 1, ConversationID: removed.ID,
		MessagesRemoved: false, CreatedAt: now, UpdatedAt: now,
	}))

	removedIDs, err := repo.FullyRemovedIDs(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []int64{removed.ID}, removedIDs)

	participantIDs, err := repo.ParticipantConversationIDs(ctx, 1, removedIDs)
	require.NoError(t, err)

	candidates, err := repo.ListCandidates(ctx, conversation.ThreadCriteria{
		UserID:         1,
		RemovedIDs:     removedIDs,
		ParticipantIDs: participantIDs,
		Order:          conversation.OrderDesc,
	})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, kept.ID, candidates[0].ID)
}

func Test_ListCandidates_ExcludesInactive(t *testing.T) {
	t.Cleanup(func() { resetTables(t) })
	repo := NewConversationRepository(testDB, nil)
	ctx := context.Background()

	seedDirect(t, repo, 1, 2)

	now := time.Now()
	closed := &Conversation.Conversation{
		UserID: 1, UserOne: 1, UserTwo: 4,
		Status: Conversation.StatusInactive, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, closed))

	candidates, err := repo.ListCandidates(ctx, conversation.ThreadCriteria{
		UserID: 1,
		Order:  conversation.OrderDesc,
	})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, Conversation.StatusActive, candidates[0].Status)
}

func Test_ListCandidates_IncludesParticipantThreads(t *testing.T) {
	t.Cleanup(func() { resetTables(t) })
	repo := NewConversationRepository(testDB, nil)
	ctx := context.Background()

	seedUser(t, 1, "Anna", "Birch")
	seedUser(t, 2, "Ben", "Cole")
	seedUser(t, 3, "Cara", "Dunn")

	// Group created by user 1, with 2 and 3 as participants.
	now := time.Now()
	group := &Conversation.Conversation{
		UserID: 1, Group: true, Name: "foursome",
		Status: Conversation.StatusActive, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, group))
	require.NoError(t, repo.AddParticipants(ctx, group.ID, []int64{2, 3}))

	participantIDs, err := repo.ParticipantConversationIDs(ctx, 2, nil)
	require.NoError(t, err)
	require.Equal(t, []int64{group.ID}, participantIDs)

	candidates, err := repo.ListCandidates(ctx, conversation.ThreadCriteria{
		UserID:         2,
		ParticipantIDs: participantIDs,
		Order:          conversation.OrderDesc,
	})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, group.ID, candidates[0].ID)
	assert.NotNil(t, candidates[0].Creator)
}

func Test_Participants_ActiveOnly(t *testing.T) {
	t.Cleanup(func() { resetTables(t) })
	repo := NewConversationRepository(testDB, nil)
	ctx := context.Background()

	seedUser(t, 1, "Anna", "Birch")
	seedUser(t, 2, "Ben", "Cole")
	seedUser(t, 3, "Cara", "Dunn")

	now := time.Now()
	group := &Conversation.Conversation{
		UserID: 1, Group: true, Name: "weekend",
		Status: Conversation.StatusActive, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, group))
	require.NoError(t, repo.AddParticipants(ctx, group.ID, []int64{1, 2, 3}))

	// User 2 leaves.
	require.NoError(t, repo.DeactivateParticipant(ctx, group.ID, 2))

	active, err := repo.Participants(ctx, group.ID, true)
	require.NoError(t, err)
	ids := make([]int64, 0, len(active))
	for _, p := range active {
		ids = append(ids, p.UserID)
	}
	assert.Equal(t, []int64{1, 3}, ids)

	all, err := repo.Participants(ctx, group.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func Test_DeactivateParticipant_NotMember(t *testing.T) {
	t.Cleanup(func() { resetTables(t) })
	repo := NewConversationRepository(testDB, nil)

	conv := seedDirect(t, repo, 1, 2)
	err := repo.DeactivateParticipant(context.Background(), conv.ID, 9)
	assert.ErrorIs(t, err, appErrors.ErrNotParticipant)
}

func Test_UpsertRemove_ReplacesWatermark(t *testing.T) {
	t.Cleanup(func() { resetTables(t) })
	repo := NewConversationRepository(testDB, nil)
	ctx := context.Background()

	conv := seedDirect(t, repo, 1, 2)

	now := time.Now()
	require.NoError(t, repo.UpsertRemove(ctx, &Conversation.ConversationRemove{
		UserID: 1, ConversationID: conv.ID,
		MessagesRemoved: true, LastMessageID: 10,
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, repo.UpsertRemove(ctx, &Conversation.ConversationRemove{
		UserID: 1, ConversationID: conv.ID,
		MessagesRemoved: true, LastMessageID: 25,
		CreatedAt: now, UpdatedAt: now,
	}))

	remove, err := repo.GetRemove(ctx, conv.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, remove)
	assert.True(t, remove.MessagesRemoved)
	assert.Equal(t, int64(25), remove.LastMessageID)

	// Only one row per (user, conversation).
	count, err := testDB.NewSelect().Model((*Conversation.ConversationRemove)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func Test_GetRemove_AbsentIsNil(t *testing.T) {
	t.Cleanup(func() { resetTables(t) })
	repo := NewConversationRepository(testDB, nil)

	remove, err := repo.GetRemove(context.Background(), 999, 1)
	require.NoError(t, err)
	assert.Nil(t, remove)
}

func Test_ListCandidates_StableOrderOnEqualTimestamps(t *testing.T) {
	t.Cleanup(func() { resetTables(t) })
	repo := NewConversationRepository(testDB, nil)
	ctx := context.Background()

	// All rows share one updated_at so ordering rests entirely on the
	// tiebreaker.
	when := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	var seeded []int64
	for peer := int64(2); peer <= 4; peer++ {
		conv := &Conversation.Conversation{
			UserID: 1, UserOne: 1, UserTwo: peer,
			Status: Conversation.StatusActive, CreatedAt: when, UpdatedAt: when,
		}
		require.NoError(t, repo.Create(ctx, conv))
		seeded = append(seeded, conv.ID)
	}

	listIDs := func(order conversation.Order) []int64 {
		candidates, err := repo.ListCandidates(ctx, conversation.ThreadCriteria{
			UserID: 1,
			Order:  order,
		})
		require.NoError(t, err)
		ids := make([]int64, 0, len(candidates))
		for _, c := range candidates {
			ids = append(ids, c.ID)
		}
		return ids
	}

	first := listIDs(conversation.OrderDesc)
	second := listIDs(conversation.OrderDesc)
	assert.Equal(t, first, second, "repeated reads must agree")
	assert.Equal(t, []int64{seeded[2], seeded[1], seeded[0]}, first)

	assert.Equal(t, seeded, listIDs(conversation.OrderAsc))
}

func Test_ListDirectByUser(t *testing.T) {
	t.Cleanup(func() { resetTables(t) })
	repo := NewConversationRepository(testDB, nil)
	ctx := context.Background()

	a := seedDirect(t, repo, 1, 2)
	b := seedDirect(t, repo, 3, 1)
	seedDirect(t, repo, 2, 3)

	convs, err := repo.ListDirectByUser(ctx, 1, 0, 10)
	require.NoError(t, err)
	ids := make(map[int64]bool, len(convs))
	for _, c := range convs {
		ids[c.ID] = true
	}
	assert.Equal(t, map[int64]bool{a.ID: true, b.ID: true}, ids)
}
