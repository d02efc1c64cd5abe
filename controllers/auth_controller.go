package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"equipment_portal/app"
	"equipment_portal/apperr"
	"equipment_portal/db"
	"equipment_portal/models"
	"equipment_portal/session"
)

type AuthController struct {
	repo     *db.Repo
	sessions *session.Store
	log      *zap.Logger
}

func NewAuthController(repo *db.Repo, sessions *session.Store, log *zap.Logger) *AuthController {
	return &AuthController{repo: repo, sessions: sessions, log: log}
}

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// POST /api/auth/signup
func (ac *AuthController) Signup(c *gin.Context) {
	var in credentialsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.NewValidation("invalid json body"))
		return
	}
	if in.Username == "" || in.Password == "" {
		fail(c, apperr.NewValidation("username and password required"))
		return
	}
	role := models.RoleStudent
	if in.Role != "" {
		r, ok := models.ParseRole(in.Role)
		if !ok {
			fail(c, apperr.NewValidation("role must be one of student, staff, admin"))
			return
		}
		role = r
	}

	u, err := ac.repo.CreateUser(c.Request.Context(), in.Username, in.Password, role)
	if err != nil {
		fail(c, err)
		return
	}

	token, err := ac.issueToken(c.Request.Context(), u)
	if err != nil {
		fail(c, err)
		return
	}
	ac.log.Info("user signed up", zap.String("username", u.Username), zap.String("role", string(u.Role)))
	c.JSON(http.StatusOK, app.H{
		"token": token,
		"user":  app.H{"username": u.Username, "role": u.Role},
	})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var in credentialsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.NewValidation("invalid json body"))
		return
	}
	if in.Username == "" || in.Password == "" {
		fail(c, apperr.NewValidation("username and password required"))
		return
	}

	u, err := ac.repo.FindUserByUsername(c.Request.Context(), in.Username)
	// Passwords are stored and compared in plaintext.
	if err != nil || u.Password != in.Password {
		fail(c, apperr.NewAuth("invalid credentials"))
		return
	}

	token, err := ac.issueToken(c.Request.Context(), u)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{
		"token": token,
		"user":  app.H{"username": u.Username, "role": u.Role},
	})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	username, role := app.Identity(c)
	c.JSON(http.StatusOK, app.H{
		"user": app.H{"username": username, "role": role},
	})
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	if token := app.BearerToken(c); token != "" {
		_ = ac.sessions.Delete(c.Request.Context(), token)
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

func (ac *AuthController) issueToken(ctx context.Context, u *models.User) (string, error) {
	token := uuid.NewString()
	if err := ac.sessions.Create(ctx, token, session.Session{Username: u.Username, Role: u.Role}); err != nil {
		return "", err
	}
	return token, nil
}
