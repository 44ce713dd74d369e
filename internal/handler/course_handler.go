package handler

import (
	"errors"
	"log"
	"net/http"

	"learning_platform/internal/middleware"
	"learning_platform/internal/model"
	"learning_platform/internal/service"

	"github.com/gin-gonic/gin"
)

// CourseHandler handles course and lesson creation
type CourseHandler struct {
	service service.CourseService
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(s service.CourseService) *CourseHandler {
	return &CourseHandler{service: s}
}

func forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"message": "You do not have permission to perform this action"})
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	teacherID, ok := middleware.AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization token is required"})
		return
	}

	var req model.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	course, err := h.service.CreateCourse(c.Request.Context(), teacherID, req)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			forbidden(c)
			return
		}
		log.Printf("Error creating course: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Course created successfully", "course": course})
}

func (h *CourseHandler) CreateLesson(c *gin.Context) {
	teacherID, ok := middleware.AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization token is required"})
		return
	}
	course, ok := middleware.OwnedCourse(c)
	if !ok {
		forbidden(c)
		return
	}

	var req model.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	lesson, err := h.service.CreateLesson(c.Request.Context(), course, teacherID, req)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			forbidden(c)
			return
		}
		log.Printf("Error creating lesson: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Lesson created successfully", "lesson": lesson})
}

// RegisterCourseRoutes registers course routes. Both require a bearer token;
// course creation is limited to teachers and lesson creation to the course owner.
func (h *CourseHandler) RegisterCourseRoutes(rg gin.IRoutes, authMW, teacherMW, ownershipMW gin.HandlerFunc) {
	rg.POST("/courses", authMW, teacherMW, h.CreateCourse)
	rg.POST("/courses/:courseId/lessons", authMW, ownershipMW, h.CreateLesson)
}
