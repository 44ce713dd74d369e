package repository

import (
	"context"
	"fmt"

	"learning_platform/internal/model"
)

// LessonRepository defines operations for lesson data
type LessonRepository interface {
	Create(ctx context.Context, lesson *model.Lesson) error
}

type lessonRepository struct {
	db DBTX
}

// NewLessonRepository creates a new LessonRepository
func NewLessonRepository(db DBTX) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) Create(ctx context.Context, l *model.Lesson) error {
	sql := `INSERT INTO lessons (id, title, description, course_id, teacher_id, created_at)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`
	err := r.db.QueryRow(ctx, sql, l.ID, l.Title, l.Description, l.CourseID, l.TeacherID, l.CreatedAt).Scan(&l.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}
	return nil
}
