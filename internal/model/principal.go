package model

import "time"

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// Principal is an account that can sign in: a student, a teacher or an admin.
// Each role is its own collection; Email is unique within it.
type Principal struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PhoneNumber  string    `json:"phoneNumber"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"` // Never leaves the server
	Branch       string    `json:"branch,omitempty"`     // Students only
	Department   string    `json:"department,omitempty"` // Teachers only
	CreatedAt    time.Time `json:"created_at"`
}

// RoleLabel returns the capitalised role name used in response messages.
func RoleLabel(role string) string {
	switch role {
	case RoleStudent:
		return "Student"
	case RoleTeacher:
		return "Teacher"
	case RoleAdmin:
		return "Admin"
	}
	return "User"
}

// IsValidRole reports whether role names one of the principal collections.
func IsValidRole(role string) bool {
	return role == RoleStudent || role == RoleTeacher || role == RoleAdmin
}

// SignupStudentRequest is the body of POST /signup/student
type SignupStudentRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Branch      string `json:"branch" binding:"required"`
	Password    string `json:"password" binding:"required,max=72"`
}

// SignupTeacherRequest is the body of POST /signup/teacher
type SignupTeacherRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Department  string `json:"department" binding:"required"`
	Password    string `json:"password" binding:"required,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
