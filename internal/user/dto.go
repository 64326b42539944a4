package user

// Note: DTO travels from usecase to handler

// Summary is the slim user projection attached to threads, messages and
// recipient lists.
type Summary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar,omitempty"`

	// Home course decoration; nil when the user has none configured.
	HomeCourse     *string `json:"home_course"`
	HomeCourseLogo *string `json:"home_course_logo"`
}
