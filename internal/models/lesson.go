package models

import (
	"time"

	"github.com/google/uuid"
)

type Lesson struct {
	ID             uuid.UUID `json:"id"`
	CourseID       uuid.UUID `json:"course_id"`
	Title          string    `json:"title"`
	VideoObjectKey string    `json:"video_object_key,omitempty"`
	Content        string    `json:"content,omitempty"`
	LessonOrder    int       `json:"lesson_order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
