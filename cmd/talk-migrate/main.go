package main

import (
	"context"
	"log"
	"time"

	"github.com/uptrace/bun"

	"github.com/GolfPlayed/talk/config"
	Conversation "github.com/GolfPlayed/talk/internal/conversation/model"
	Message "github.com/GolfPlayed/talk/internal/message/model"
	User "github.com/GolfPlayed/talk/internal/user/model"
	"github.com/GolfPlayed/talk/pkg/db"
	"github.com/GolfPlayed/talk/pkg/logger"
)

// talk-migrate creates the schema. Idempotent, safe to run on every deploy.
func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	lg, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	bunDB, err := db.Open(ctx, cfg.Bun.DSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer bunDB.Close()

	models := []any{
		(*User.User)(nil),
		(*User.Profile)(nil),
		(*User.Course)(nil),
		(*User.HomeCourse)(nil),
		(*Conversation.Conversation)(nil),
		(*Conversation.ConversationParticipant)(nil),
		(*Conversation.ConversationRemove)(nil),
		(*Message.Message)(nil),
	}
	for _, model := range models {
		if _, err := bunDB.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			log.Fatalf("create table for %T: %v", model, err)
		}
	}

	// Backstop for concurrent 1:1 creation; pairs are stored normalized so a
	// plain composite index is enough.
	if err := createPairIndex(ctx, bunDB); err != nil {
		log.Fatalf("create pair index: %v", err)
	}

	lg.Info("talk-migrate done", "tables", len(models))
}

func createPairIndex(ctx context.Context, bunDB *bun.DB) error {
	_, err := bunDB.NewRaw(
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_conversations_pair
		 ON conversations (user_one, user_two) WHERE "group" = FALSE`,
	).Exec(ctx)
	return err
}
