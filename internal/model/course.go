package model

import "time"

// Course is owned by the teacher who created it.
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TeacherID   string    `json:"teacherId"`
	CreatedAt   time.Time `json:"created_at"`
}

// Lesson belongs to a course and carries the course owner's id.
type Lesson struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CourseID    string    `json:"courseId"`
	TeacherID   string    `json:"teacherId"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type CreateLessonRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}
