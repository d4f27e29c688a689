package models

type LeaderboardEntry struct {
	Rank         int    `json:"rank"`
	UserID       int64  `json:"userId"`
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage,omitempty"`
	Points       int64  `json:"points"`
}

type Rank struct {
	CourseID int64 `json:"courseId"`
	Rank     int   `json:"rank"`
	Points   int64 `json:"points"`
	Total    int   `json:"total"`
}
