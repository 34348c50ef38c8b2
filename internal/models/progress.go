package models

import (
	"time"

	"github.com/google/uuid"
)

// QuizAttempt is one record in a user's attempt history. The history is
// append-only: attempts are never rewritten or removed.
type QuizAttempt struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"user_id"`
	CourseID  uuid.UUID    `json:"course_id"`
	Score     float64      `json:"score"`
	Answers   []QuizAnswer `json:"answers"`
	CreatedAt time.Time    `json:"created_at"`
}

type QuizAnswer struct {
	QuestionID     uuid.UUID `json:"question_id"`
	SelectedOption string    `json:"selected_option"`
	IsCorrect      bool      `json:"is_correct"`
}

// CompletedLesson marks membership in a user's completion set. Presence
// means "completed"; toggling membership is the only mutation.
type CompletedLesson struct {
	UserID   uuid.UUID `json:"user_id"`
	CourseID uuid.UUID `json:"course_id"`
	LessonID uuid.UUID `json:"lesson_id"`
}
