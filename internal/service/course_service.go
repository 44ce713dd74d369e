package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"learning_platform/internal/model"
	"learning_platform/internal/repository"

	"github.com/google/uuid"
)

// ErrForbidden covers both a missing course and a course owned by someone else.
var ErrForbidden = errors.New("you do not have permission to perform this action")

// CourseService defines operations for courses and their lessons
type CourseService interface {
	CreateCourse(ctx context.Context, teacherID string, req model.CreateCourseRequest) (*model.Course, error)
	CheckCourseOwnership(ctx context.Context, courseID, principalID string) (*model.Course, error)
	CreateLesson(ctx context.Context, course *model.Course, teacherID string, req model.CreateLessonRequest) (*model.Lesson, error)
}

type courseService struct {
	principals repository.PrincipalRepository
	courses    repository.CourseRepository
	lessons    repository.LessonRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(principals repository.PrincipalRepository, courses repository.CourseRepository, lessons repository.LessonRepository) CourseService {
	return &courseService{principals: principals, courses: courses, lessons: lessons}
}

// CreateCourse creates a course owned by teacherID. The token alone is not
// trusted: the owner must still be a stored teacher.
func (s *courseService) CreateCourse(ctx context.Context, teacherID string, req model.CreateCourseRequest) (*model.Course, error) {
	if teacherID == "" {
		return nil, ErrForbidden
	}
	owner, err := s.principals.FindByID(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to load course owner: %w", err)
	}
	if owner == nil || owner.Role != model.RoleTeacher {
		return nil, ErrForbidden
	}
	course := &model.Course{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		TeacherID:   teacherID,
		CreatedAt:   time.Now(),
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course in repo: %w", err)
	}
	return course, nil
}

// CheckCourseOwnership loads the course and returns it only if principalID owns it.
func (s *courseService) CheckCourseOwnership(ctx context.Context, courseID, principalID string) (*model.Course, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load course: %w", err)
	}
	// An empty principal id must never match, even against a course with an empty owner.
	if course == nil || principalID == "" || course.TeacherID != principalID {
		return nil, ErrForbidden
	}
	return course, nil
}

func (s *courseService) CreateLesson(ctx context.Context, course *model.Course, teacherID string, req model.CreateLessonRequest) (*model.Lesson, error) {
	if course == nil || teacherID == "" || course.TeacherID != teacherID {
		return nil, ErrForbidden
	}
	lesson := &model.Lesson{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		CourseID:    course.ID,
		TeacherID:   teacherID,
		CreatedAt:   time.Now(),
	}
	if err := s.lessons.Create(ctx, lesson); err != nil {
		return nil, fmt.Errorf("failed to create lesson in repo: %w", err)
	}
	return lesson, nil
}
