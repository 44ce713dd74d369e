package repository

import (
	"context"
	"errors"
	"fmt"

	"learning_platform/internal/model"

	"github.com/jackc/pgx/v5"
)

// CourseRepository defines operations for course data
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	FindByID(ctx context.Context, id string) (*model.Course, error)
}

type courseRepository struct {
	db DBTX
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DBTX) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, c *model.Course) error {
	sql := `INSERT INTO courses (id, title, description, teacher_id, created_at)
            VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	err := r.db.QueryRow(ctx, sql, c.ID, c.Title, c.Description, c.TeacherID, c.CreatedAt).Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

// FindByID retrieves a course by its ID, (nil, nil) if it does not exist
func (r *courseRepository) FindByID(ctx context.Context, id string) (*model.Course, error) {
	c := &model.Course{}
	sql := `SELECT id, title, description, teacher_id, created_at FROM courses WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&c.ID, &c.Title, &c.Description, &c.TeacherID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find course by ID: %w", err)
	}
	return c, nil
}
