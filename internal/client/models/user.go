// Package models defines the wire types exchanged with the LearnHub API.
package models

// User is the identity and progress snapshot returned by auth and profile
// endpoints.
type User struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	ProfileImage  string `json:"profileImage,omitempty"`
	TotalPoints   int64  `json:"totalPoints"`
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
	Role          string `json:"role"`
	EmailVerified bool   `json:"emailVerified"`
	PhoneVerified bool   `json:"phoneVerified"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

type ProfileUpdate struct {
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type Badge struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IconURL     string `json:"iconUrl,omitempty"`
	EarnedAt    string `json:"earnedAt,omitempty"`
}

// UserStats is the aggregate shown on the dashboard.
type UserStats struct {
	TotalPoints      int64 `json:"totalPoints"`
	CurrentStreak    int   `json:"currentStreak"`
	LongestStreak    int   `json:"longestStreak"`
	CoursesEnrolled  int   `json:"coursesEnrolled"`
	CoursesCompleted int   `json:"coursesCompleted"`
	LessonsCompleted int   `json:"lessonsCompleted"`
	QuizzesPassed    int   `json:"quizzesPassed"`
	BadgesEarned     int   `json:"badgesEarned"`
}

type Enrollment struct {
	ID              int64   `json:"id"`
	CourseID        int64   `json:"courseId"`
	CourseTitle     string  `json:"courseTitle,omitempty"`
	EnrolledAt      string  `json:"enrolledAt,omitempty"`
	ProgressPercent float64 `json:"progressPercent"`
	Completed       bool    `json:"completed"`
}
