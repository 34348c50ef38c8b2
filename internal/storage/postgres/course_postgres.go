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

type CoursePostgres struct {
	db *pgxpool.Pool
}

func NewCoursePostgres(db *pgxpool.Pool) *CoursePostgres {
	return &CoursePostgres{db: db}
}

const courseColumns = `
	id, title, description, category_id, type, price, author,
	created_by, image_object_keys, likes, favorites, created_at, updated_at
`

const courseColumnsQualified = `
	c.id, c.title, c.description, c.category_id, c.type, c.price, c.author,
	c.created_by, c.image_object_keys, c.likes, c.favorites, c.created_at, c.updated_at
`

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.CategoryID,
		&course.Type,
		&course.Price,
		&course.Author,
		&course.CreatedBy,
		&course.ImageObjectKeys,
		&course.Likes,
		&course.Favorites,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (r *CoursePostgres) NewCourse(ctx context.Context, course *models.Course) (uuid.UUID, error) {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now
	if course.ImageObjectKeys == nil {
		course.ImageObjectKeys = []string{}
	}
	query := `
		INSERT INTO courses (
			id, title, description, category_id, type, price, author,
			created_by, image_object_keys, likes, favorites, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13
		)
		RETURNING id
	`
	var returnedID uuid.UUID
	err := r.db.QueryRow(
		ctx,
		query,
		course.ID,
		course.Title,
		course.Description,
		course.CategoryID,
		course.Type,
		course.Price,
		course.Author,
		course.CreatedBy,
		course.ImageObjectKeys,
		course.Likes,
		course.Favorites,
		course.CreatedAt,
		course.UpdatedAt,
	).Scan(&returnedID)
	if err != nil {
		return uuid.Nil, err
	}
	return returnedID, nil
}

func (r *CoursePostgres) CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	return scanCourse(r.db.QueryRow(ctx, query, id))
}

func (r *CoursePostgres) ListCourses(ctx context.Context) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY created_at`
	rows, err := r.db.Query(ctx, query)
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

func (r *CoursePostgres) UpdateCourse(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		   SET title       = $2,
		       description = $3,
		       price       = $4,
		       updated_at  = NOW()
		 WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, course.ID, course.Title, course.Description, course.Price)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrCourseNotFound
	}
	return nil
}

func (r *CoursePostgres) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrCourseNotFound
	}
	return nil
}

func (r *CoursePostgres) AddImage(ctx context.Context, courseID uuid.UUID, objectKey string) error {
	query := `
		UPDATE courses
		   SET image_object_keys = array_append(image_object_keys, $2),
		       updated_at        = NOW()
		 WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, courseID, objectKey)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrCourseNotFound
	}
	return nil
}

// ListCourseSales returns one row per course with the size of its purchase
// set, in creation order. Zero-purchase courses are included.
func (r *CoursePostgres) ListCourseSales(ctx context.Context) ([]models.CourseSales, error) {
	query := `
		SELECT c.id, c.title, c.price, COUNT(p.user_id)
		FROM courses c
		LEFT JOIN course_purchases p ON p.course_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []models.CourseSales
	for rows.Next() {
		var s models.CourseSales
		if err := rows.Scan(&s.ID, &s.Title, &s.Price, &s.PurchaseCount); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
