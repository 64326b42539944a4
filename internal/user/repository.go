package user

import (
	"context"

	User "github.com/GolfPlayed/talk/internal/user/model"
)

type UserRepository interface {
	GetUserByID(ctx context.Context, id int64) (*User.User, error)

	// Summary resolves one user with profile and home-course decoration.
	Summary(ctx context.Context, id int64) (*Summary, error)

	// Summaries resolves many users at once, without home-course lookups.
	// Order of the result follows ids; missing users are skipped.
	Summaries(ctx context.Context, ids []int64) ([]Summary, error)
}
