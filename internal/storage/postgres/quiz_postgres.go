package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rezaali07/NextLearn-backend/internal/app_errors"
	"github.com/rezaali07/NextLearn-backend/internal/models"
)

// Quiz questions are owned inline by the quiz row and stored as a JSONB
// document; they have no lifecycle of their own.
type QuizPostgres struct {
	db *pgxpool.Pool
}

func NewQuizPostgres(db *pgxpool.Pool) *QuizPostgres {
	return &QuizPostgres{db: db}
}

func (r *QuizPostgres) AddQuiz(ctx context.Context, quiz models.Quiz) (*models.Quiz, error) {
	if quiz.ID == uuid.Nil {
		quiz.ID = uuid.New()
	}
	for i := range quiz.Questions {
		if quiz.Questions[i].ID == uuid.Nil {
			quiz.Questions[i].ID = uuid.New()
		}
	}
	now := time.Now().UTC()
	quiz.CreatedAt = now
	quiz.UpdatedAt = now

	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return nil, fmt.Errorf("marshal questions: %w", err)
	}

	query := `
		INSERT INTO quizzes (id, course_id, title, description, questions, quiz_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.Exec(ctx, query,
		quiz.ID, quiz.CourseID, quiz.Title, quiz.Description,
		questions, quiz.QuizOrder, quiz.CreatedAt, quiz.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizPostgres) QuizByID(ctx context.Context, courseID, quizID uuid.UUID) (*models.Quiz, error) {
	query := `
		SELECT id, course_id, title, description, questions, quiz_order, created_at, updated_at
		FROM quizzes
		WHERE id = $1 AND course_id = $2
	`
	var quiz models.Quiz
	var questions []byte
	err := r.db.QueryRow(ctx, query, quizID, courseID).Scan(
		&quiz.ID, &quiz.CourseID, &quiz.Title, &quiz.Description,
		&questions, &quiz.QuizOrder, &quiz.CreatedAt, &quiz.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrQuizNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(questions, &quiz.Questions); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}
	return &quiz, nil
}

func (r *QuizPostgres) QuizzesByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Quiz, error) {
	query := `
		SELECT id, course_id, title, description, questions, quiz_order, created_at, updated_at
		FROM quizzes
		WHERE course_id = $1
		ORDER BY quiz_order, created_at
	`
	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []models.Quiz
	for rows.Next() {
		var quiz models.Quiz
		var questions []byte
		if err := rows.Scan(
			&quiz.ID, &quiz.CourseID, &quiz.Title, &quiz.Description,
			&questions, &quiz.QuizOrder, &quiz.CreatedAt, &quiz.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(questions, &quiz.Questions); err != nil {
			return nil, fmt.Errorf("unmarshal questions: %w", err)
		}
		quizzes = append(quizzes, quiz)
	}
	return quizzes, rows.Err()
}

func (r *QuizPostgres) UpdateQuiz(ctx context.Context, quiz models.Quiz) error {
	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	query := `
		UPDATE quizzes
		   SET title       = $3,
		       description = $4,
		       questions   = $5,
		       quiz_order  = $6,
		       updated_at  = NOW()
		 WHERE id = $1 AND course_id = $2
	`
	cmdTag, err := r.db.Exec(ctx, query,
		quiz.ID, quiz.CourseID, quiz.Title, quiz.Description, questions, quiz.QuizOrder,
	)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrQuizNotFound
	}
	return nil
}

func (r *QuizPostgres) DeleteQuiz(ctx context.Context, courseID, quizID uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM quizzes WHERE id = $1 AND course_id = $2`, quizID, courseID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrQuizNotFound
	}
	return nil
}
