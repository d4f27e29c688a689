package models

type StartProctoringRequest struct {
	QuizID int64 `json:"quizId"`
}

type ProctoringSession struct {
	ID        int64  `json:"id"`
	QuizID    int64  `json:"quizId"`
	StartedAt string `json:"startedAt,omitempty"`
	EndedAt   string `json:"endedAt,omitempty"`
	Status    string `json:"status,omitempty"`
}

// Violation is reported while a proctored attempt is running. Timestamp is
// RFC 3339.
type Violation struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}
