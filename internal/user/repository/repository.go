package repository

import (
	"context"
	"database/sql"

	"github.com/GolfPlayed/talk/internal/user"
	User "github.com/GolfPlayed/talk/internal/user/model"
	appErrors "github.com/GolfPlayed/talk/pkg/errors"
	"github.com/GolfPlayed/talk/pkg/logger"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewUserRepository(db *bun.DB, logger *logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

var _ user.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*User.User, error) {

	u := new(User.User)
	err := r.db.NewSelect().Model(u).Relation("Profile").Where("u.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan: ")
	}
	return u, nil
}

func (r *UserRepository) Summary(ctx context.Context, id int64) (*user.Summary, error) {

	u, err := r.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s := user.Summarize(u)

	hc := new(User.HomeCourse)
	err = r.db.NewSelect().Model(hc).Relation("Course").Where("hc.user_id = ?", id).Scan(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(err, "userRepo.Summary.HomeCourse: ")
		}
		return &s, nil
	}
	if hc.Course != nil {
		s.HomeCourse = &hc.Course.Name
		s.HomeCourseLogo = &hc.Course.Logo
	}
	return &s, nil
}

func (r *UserRepository) Summaries(ctx context.Context, ids []int64) ([]user.Summary, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var users []User.User
	err := r.db.NewSelect().Model(&users).
		Relation("Profile").
		Where("u.id IN (?)", bun.In(ids)).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.Summaries.Scan: ")
	}

	byID := make(map[int64]*User.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	out := make([]user.Summary, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			out = append(out, user.Summarize(u))
		}
	}
	return out, nil
}
