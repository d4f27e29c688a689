package models

type Course struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	Instructor   string  `json:"instructor,omitempty"`
	ThumbnailURL string  `json:"thumbnailUrl,omitempty"`
	Price        float64 `json:"price"`
	Level        string  `json:"level,omitempty"`
	LessonCount  int     `json:"lessonCount"`
	Enrolled     bool    `json:"enrolled"`
	Published    bool    `json:"published"`
}

type Lesson struct {
	ID          int64  `json:"id"`
	CourseID    int64  `json:"courseId"`
	Title       string `json:"title"`
	Content     string `json:"content,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
	OrderIndex  int    `json:"orderIndex"`
	Points      int    `json:"points"`
	Completed   bool   `json:"completed"`
	HasQuiz     bool   `json:"hasQuiz"`
	DurationMin int    `json:"durationMinutes,omitempty"`
}

type CourseProgress struct {
	CourseID         int64   `json:"courseId"`
	CompletedLessons int     `json:"completedLessons"`
	TotalLessons     int     `json:"totalLessons"`
	ProgressPercent  float64 `json:"progressPercent"`
	PointsEarned     int64   `json:"pointsEarned"`
}

// LessonCompletion is the server's answer to completing a lesson.
type LessonCompletion struct {
	LessonID      int64 `json:"lessonId"`
	PointsAwarded int   `json:"pointsAwarded"`
	TotalPoints   int64 `json:"totalPoints"`
	CurrentStreak int   `json:"currentStreak"`
}

// EnrollRequest carries optional payment proof for paid courses.
type EnrollRequest struct {
	OrderID   string `json:"orderId,omitempty"`
	PaymentID string `json:"paymentId,omitempty"`
}
