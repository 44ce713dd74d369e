package middleware

import (
	"errors"
	"log"
	"net/http"

	"learning_platform/internal/model"
	"learning_platform/internal/service"

	"github.com/gin-gonic/gin"
)

// CourseKey holds the *model.Course loaded by CourseOwnershipMiddleware.
const CourseKey = "course"

// CourseOwnershipMiddleware must run after JWTAuthMiddleware. It lets the
// request through only if the authenticated principal owns :courseId.
func CourseOwnershipMiddleware(courses service.CourseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		principalID, _ := AuthUserID(c)

		course, err := courses.CheckCourseOwnership(c.Request.Context(), c.Param("courseId"), principalID)
		if err != nil {
			if errors.Is(err, service.ErrForbidden) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "You do not have permission to perform this action"})
				return
			}
			log.Printf("Error checking course ownership: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		c.Set(CourseKey, course)
		c.Next()
	}
}

// OwnedCourse returns the course stored by CourseOwnershipMiddleware
func OwnedCourse(c *gin.Context) (*model.Course, bool) {
	v, ok := c.Get(CourseKey)
	if !ok {
		return nil, false
	}
	course, ok := v.(*model.Course)
	return course, ok && course != nil
}
