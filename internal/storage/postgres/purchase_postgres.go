package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rezaali07/NextLearn-backend/internal/app_errors"
	"github.com/rezaali07/NextLearn-backend/internal/models"
)

type PurchasePostgres struct {
	db *pgxpool.Pool
}

func NewPurchasePostgres(db *pgxpool.Pool) *PurchasePostgres {
	return &PurchasePostgres{db: db}
}

func (r *PurchasePostgres) Purchase(ctx context.Context, courseID, userID uuid.UUID) error {
	query := `
		INSERT INTO course_purchases (course_id, user_id, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, courseID, userID, time.Now().UTC())
	if err != nil {
		if pgErr := UnwrapPgError(err); pgErr != nil && pgErr.Code == uniqueViolation {
			return app_errors.ErrAlreadyPurchased
		}
		return fmt.Errorf("failed to purchase course: %w", err)
	}
	return nil
}

func (r *PurchasePostgres) IsPurchased(ctx context.Context, courseID, userID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM course_purchases WHERE course_id = $1 AND user_id = $2)`
	err := r.db.QueryRow(ctx, query, courseID, userID).Scan(&exists)
	return exists, err
}

func (r *PurchasePostgres) PurchasedCourses(ctx context.Context, userID uuid.UUID) ([]models.Course, error) {
	query := `
		SELECT ` + courseColumnsQualified + `
		FROM courses c
		INNER JOIN course_purchases p ON p.course_id = c.id
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchased courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *course)
	}
	return courses, rows.Err()
}

func (r *PurchasePostgres) Purchasers(ctx context.Context, courseID uuid.UUID) ([]models.User, error) {
	query := `
		SELECT u.id, u.name, u.email
		FROM users u
		INNER JOIN course_purchases p ON p.user_id = u.id
		WHERE p.course_id = $1
		ORDER BY p.created_at
	`
	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchasers: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
