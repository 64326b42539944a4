package user

import (
	User "github.com/GolfPlayed/talk/internal/user/model"
)

// Summarize projects a loaded user row (with or without profile) into the
// slim Summary shape. Home-course decoration is a separate lookup and is not
// filled here.
func Summarize(u *User.User) Summary {
	s := Summary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
	if u.Profile != nil {
		s.Avatar = u.Profile.Avatar
	}
	return s
}
