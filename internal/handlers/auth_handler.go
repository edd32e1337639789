package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ebsaroptics/optical-center-api/internal/auth"
	"github.com/ebsaroptics/optical-center-api/internal/config"
	"github.com/ebsaroptics/optical-center-api/internal/httperr"
	"github.com/ebsaroptics/optical-center-api/internal/models"
)

type AuthHandler struct {
	creds  auth.CredentialStore
	config *config.Config
}

func NewAuthHandler(creds auth.CredentialStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{creds: creds, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_credentials", "اسم المستخدم وكلمة المرور مطلوبان")
		return
	}

	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)

	emp, err := h.creds.Verify(c.Request.Context(), username, password)
	if err != nil {
		httperr.Internal(c, "internal_error", "حدث خطأ في الخادم. يرجى المحاولة مرة أخرى")
		return
	}
	if emp == nil {
		log.Printf("failed login attempt: %s", username)
		httperr.Unauthorized(c, "invalid_credentials", "اسم المستخدم أو كلمة المرور غير صحيحة")
		return
	}

	token, err := h.generateToken(emp)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "حدث خطأ في الخادم. يرجى المحاولة مرة أخرى")
		return
	}

	log.Printf("employee login successful: %s", emp.Username)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "تم تسجيل الدخول بنجاح",
		"user": gin.H{
			"id":          emp.ID,
			"username":    emp.Username,
			"displayName": emp.DisplayName,
			"role":        emp.Role,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(emp *models.Employee) (string, error) {
	claims := jwt.MapClaims{
		"sub":      emp.ID,
		"username": emp.Username,
		"role":     emp.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
