package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rezaali07/NextLearn-backend/internal/app_errors"
	"github.com/rezaali07/NextLearn-backend/internal/models"
)

type LessonPostgres struct {
	db *pgxpool.Pool
}

func NewLessonPostgres(db *pgxpool.Pool) *LessonPostgres {
	return &LessonPostgres{db: db}
}

func (r *LessonPostgres) AddLesson(ctx context.Context, lesson models.Lesson) (*models.Lesson, error) {
	if lesson.ID == uuid.Nil {
		lesson.ID = uuid.New()
	}
	now := time.Now().UTC()
	lesson.CreatedAt = now
	lesson.UpdatedAt = now

	query := `
		INSERT INTO lessons (id, course_id, title, video_object_key, content, lesson_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		lesson.ID, lesson.CourseID, lesson.Title, lesson.VideoObjectKey,
		lesson.Content, lesson.LessonOrder, lesson.CreatedAt, lesson.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonPostgres) LessonByID(ctx context.Context, courseID, lessonID uuid.UUID) (*models.Lesson, error) {
	query := `
		SELECT id, course_id, title, video_object_key, content, lesson_order, created_at, updated_at
		FROM lessons
		WHERE id = $1 AND course_id = $2
	`
	var lesson models.Lesson
	err := r.db.QueryRow(ctx, query, lessonID, courseID).Scan(
		&lesson.ID, &lesson.CourseID, &lesson.Title, &lesson.VideoObjectKey,
		&lesson.Content, &lesson.LessonOrder, &lesson.CreatedAt, &lesson.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrLessonNotFound
		}
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonPostgres) LessonsByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Lesson, error) {
	query := `
		SELECT id, course_id, title, video_object_key, content, lesson_order, created_at, updated_at
		FROM lessons
		WHERE course_id = $1
		ORDER BY lesson_order, created_at
	`
	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		var lesson models.Lesson
		if err := rows.Scan(
			&lesson.ID, &lesson.CourseID, &lesson.Title, &lesson.VideoObjectKey,
			&lesson.Content, &lesson.LessonOrder, &lesson.CreatedAt, &lesson.UpdatedAt,
		); err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}
	return lessons, rows.Err()
}

func (r *LessonPostgres) UpdateLesson(ctx context.Context, lesson models.Lesson) error {
	query := `
		UPDATE lessons
		   SET title            = $3,
		       video_object_key = $4,
		       content          = $5,
		       lesson_order     = $6,
		       updated_at       = NOW()
		 WHERE id = $1 AND course_id = $2
	`
	cmdTag, err := r.db.Exec(ctx, query,
		lesson.ID, lesson.CourseID, lesson.Title, lesson.VideoObjectKey,
		lesson.Content, lesson.LessonOrder,
	)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrLessonNotFound
	}
	return nil
}

func (r *LessonPostgres) DeleteLesson(ctx context.Context, courseID, lessonID uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM lessons WHERE id = $1 AND course_id = $2`, lessonID, courseID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrLessonNotFound
	}
	return nil
}
