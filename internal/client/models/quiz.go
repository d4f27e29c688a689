package models

type Quiz struct {
	ID           int64      `json:"id"`
	LessonID     int64      `json:"lessonId"`
	Title        string     `json:"title"`
	TimeLimitSec int        `json:"timeLimitSeconds,omitempty"`
	PassingScore int        `json:"passingScore"`
	Proctored    bool       `json:"proctored"`
	Questions    []Question `json:"questions"`
}

type Question struct {
	ID      int64    `json:"id"`
	Text    string   `json:"text"`
	Type    string   `json:"type"`
	Points  int      `json:"points"`
	Options []Option `json:"options,omitempty"`
}

type Option struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type QuizAttempt struct {
	ID          int64  `json:"id"`
	QuizID      int64  `json:"quizId"`
	StartedAt   string `json:"startedAt,omitempty"`
	CompletedAt string `json:"completedAt,omitempty"`
	Score       int    `json:"score"`
	Passed      bool   `json:"passed"`
}

// Answer is either a selected option or free text.
type Answer struct {
	SelectedOptionID *int64 `json:"selectedOptionId,omitempty"`
	AnswerText       string `json:"answerText,omitempty"`
}

type AnswerSubmission struct {
	QuestionID int64 `json:"questionId"`
	Answer
}

type AnswerResult struct {
	QuestionID int64 `json:"questionId"`
	Correct    bool  `json:"correct"`
	Points     int   `json:"points"`
}

type AttemptResults struct {
	Attempt QuizAttempt    `json:"attempt"`
	Answers []AnswerResult `json:"answers"`
}
