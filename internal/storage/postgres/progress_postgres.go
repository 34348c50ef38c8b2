package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rezaali07/NextLearn-backend/internal/models"
)

type ProgressPostgres struct {
	db *pgxpool.Pool
}

func NewProgressPostgres(db *pgxpool.Pool) *ProgressPostgres {
	return &ProgressPostgres{db: db}
}

// InsertAttempt appends one attempt row. Attempts are never updated or
// deleted afterwards.
func (r *ProgressPostgres) InsertAttempt(ctx context.Context, attempt models.QuizAttempt) (uuid.UUID, error) {
	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	attempt.CreatedAt = time.Now().UTC()

	answers, err := json.Marshal(attempt.Answers)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal answers: %w", err)
	}

	query := `
		INSERT INTO quiz_attempts (id, user_id, course_id, score, answers, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.db.Exec(ctx, query,
		attempt.ID, attempt.UserID, attempt.CourseID, attempt.Score, answers, attempt.CreatedAt,
	)
	if err != nil {
		return uuid.Nil, err
	}
	return attempt.ID, nil
}

func (r *ProgressPostgres) AttemptsByUser(ctx context.Context, userID uuid.UUID) ([]models.QuizAttempt, error) {
	query := `
		SELECT id, user_id, course_id, score, answers, created_at
		FROM quiz_attempts
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []models.QuizAttempt
	for rows.Next() {
		var attempt models.QuizAttempt
		var answers []byte
		if err := rows.Scan(
			&attempt.ID, &attempt.UserID, &attempt.CourseID,
			&attempt.Score, &answers, &attempt.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(answers, &attempt.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers: %w", err)
		}
		attempts = append(attempts, attempt)
	}
	return attempts, rows.Err()
}

func (r *ProgressPostgres) HasCompleted(ctx context.Context, userID, courseID, lessonID uuid.UUID) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM completed_lessons
			WHERE user_id = $1 AND course_id = $2 AND lesson_id = $3
		)
	`
	err := r.db.QueryRow(ctx, query, userID, courseID, lessonID).Scan(&exists)
	return exists, err
}

func (r *ProgressPostgres) AddCompleted(ctx context.Context, userID, courseID, lessonID uuid.UUID) error {
	query := `
		INSERT INTO completed_lessons (user_id, course_id, lesson_id)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, userID, courseID, lessonID)
	return err
}

func (r *ProgressPostgres) RemoveCompleted(ctx context.Context, userID, courseID, lessonID uuid.UUID) error {
	query := `
		DELETE FROM completed_lessons
		WHERE user_id = $1 AND course_id = $2 AND lesson_id = $3
	`
	_, err := r.db.Exec(ctx, query, userID, courseID, lessonID)
	return err
}

func (r *ProgressPostgres) CompletedLessons(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT lesson_id FROM completed_lessons
		WHERE user_id = $1 AND course_id = $2
	`
	rows, err := r.db.Query(ctx, query, userID, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessonIDs []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		lessonIDs = append(lessonIDs, id)
	}
	return lessonIDs, rows.Err()
}
