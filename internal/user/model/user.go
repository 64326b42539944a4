package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User rows are owned by the main application; this service only reads them
// to decorate conversations and messages.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID int64 `bun:",pk,autoincrement"`

	FirstName string `bun:",notnull"`
	LastName  string `bun:",notnull"`

	Profile *Profile `bun:"rel:has-one,join:id=user_id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

type Profile struct {
	bun.BaseModel `bun:"table:profiles,alias:p"`

	ID     int64 `bun:",pk,autoincrement"`
	UserID int64 `bun:",notnull,unique"`

	Avatar string `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
