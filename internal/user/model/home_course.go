package models

import (
	"time"

	"github.com/uptrace/bun"
)

// HomeCourse links a user to the golf course they play from. Message sender
// summaries carry the course name and logo when one is configured.
type HomeCourse struct {
	bun.BaseModel `bun:"table:home_courses,alias:hc"`

	ID     int64 `bun:",pk,autoincrement"`
	UserID int64 `bun:",notnull,unique"`

	CourseID int64   `bun:",notnull"`
	Course   *Course `bun:"rel:belongs-to,join:course_id=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID int64 `bun:",pk,autoincrement"`

	Name string `bun:",notnull"`
	Logo string `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
