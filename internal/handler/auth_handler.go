package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"learning_platform/internal/model"
	"learning_platform/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup and login for students, teachers and admins
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) SignupStudent(c *gin.Context) {
	var req model.SignupStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	h.signup(c, &model.Principal{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Role:        model.RoleStudent,
		Branch:      req.Branch,
	}, req.Password)
}

func (h *AuthHandler) SignupTeacher(c *gin.Context) {
	var req model.SignupTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	h.signup(c, &model.Principal{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Role:        model.RoleTeacher,
		Department:  req.Department,
	}, req.Password)
}

func (h *AuthHandler) signup(c *gin.Context, p *model.Principal, password string) {
	label := model.RoleLabel(p.Role)

	if err := h.service.Signup(c.Request.Context(), p, password); err != nil {
		if errors.Is(err, service.ErrPrincipalAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": label + " already exists"})
			return
		}
		if errors.Is(err, service.ErrPasswordTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at most 72 bytes"})
			return
		}
		log.Printf("Error registering %s: %v", p.Role, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error registering " + p.Role})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": label + " registered successfully"})
}

// Login returns a handler that authenticates against the given role's collection.
func (h *AuthHandler) Login(role string) gin.HandlerFunc {
	label := model.RoleLabel(role)

	return func(c *gin.Context) {
		var req model.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
			return
		}

		p, token, err := h.service.Login(c.Request.Context(), role, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrPrincipalNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": label + " not found"})
			case errors.Is(err, service.ErrInvalidCredentials):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			default:
				log.Printf("Error logging in %s: %v", role, err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in " + strings.ToLower(label)})
			}
			return
		}

		resp := gin.H{
			"message": label + " logged in successfully",
			"id":      p.ID,
			"role":    p.Role,
		}
		if token != "" {
			resp["token"] = token
		}
		c.JSON(http.StatusOK, resp)
	}
}

// RegisterAuthRoutes registers signup and login routes
func (h *AuthHandler) RegisterAuthRoutes(rg gin.IRoutes) {
	rg.POST("/signup/student", h.SignupStudent)
	rg.POST("/signup/teacher", h.SignupTeacher)

	rg.POST("/login/student", h.Login(model.RoleStudent))
	rg.POST("/login/teacher", h.Login(model.RoleTeacher))
	rg.POST("/login/admin", h.Login(model.RoleAdmin))
}
