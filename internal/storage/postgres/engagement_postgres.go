package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rezaali07/NextLearn-backend/internal/models"
)

type EngagementPostgres struct {
	db *pgxpool.Pool
}

func NewEngagementPostgres(db *pgxpool.Pool) *EngagementPostgres {
	return &EngagementPostgres{db: db}
}

func engagementTable(kind models.EngagementKind) (table, counter string, err error) {
	switch kind {
	case models.EngagementLike:
		return "course_likes", "likes", nil
	case models.EngagementFavorite:
		return "course_favorites", "favorites", nil
	default:
		return "", "", fmt.Errorf("unknown engagement kind %q", kind)
	}
}

func (r *EngagementPostgres) Contains(ctx context.Context, kind models.EngagementKind, courseID, userID uuid.UUID) (bool, error) {
	table, _, err := engagementTable(kind)
	if err != nil {
		return false, err
	}
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE course_id = $1 AND user_id = $2)`, table)
	err = r.db.QueryRow(ctx, query, courseID, userID).Scan(&exists)
	return exists, err
}

func (r *EngagementPostgres) Add(ctx context.Context, kind models.EngagementKind, courseID, userID uuid.UUID) error {
	table, _, err := engagementTable(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (course_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, table)
	_, err = r.db.Exec(ctx, query, courseID, userID)
	return err
}

func (r *EngagementPostgres) Remove(ctx context.Context, kind models.EngagementKind, courseID, userID uuid.UUID) error {
	table, _, err := engagementTable(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE course_id = $1 AND user_id = $2`, table)
	_, err = r.db.Exec(ctx, query, courseID, userID)
	return err
}

// Recount sets the denormalized counter from the authoritative set size and
// returns the new value. The counter is never incremented independently, so
// repeated or interleaved toggles cannot make it drift from the set.
func (r *EngagementPostgres) Recount(ctx context.Context, kind models.EngagementKind, courseID uuid.UUID) (int, error) {
	table, counter, err := engagementTable(kind)
	if err != nil {
		return 0, err
	}
	query := fmt.Sprintf(`
		UPDATE courses
		   SET %[2]s = (SELECT COUNT(*) FROM %[1]s WHERE course_id = $1)
		 WHERE id = $1
		RETURNING %[2]s
	`, table, counter)
	var count int
	if err := r.db.QueryRow(ctx, query, courseID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EngagementPostgres) CoursesByUser(ctx context.Context, kind models.EngagementKind, userID uuid.UUID) ([]models.Course, error) {
	table, _, err := engagementTable(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT `+courseColumnsQualified+`
		FROM courses c
		INNER JOIN %s e ON e.course_id = c.id
		WHERE e.user_id = $1
		ORDER BY c.created_at
	`, table)
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
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
