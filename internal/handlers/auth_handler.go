package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/config"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/httperr"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/httpresp"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/middleware"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db     *gorm.DB
	rdb    *redis.Client
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, rdb: rdb, config: cfg}
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
		httperr.BadRequest(c, "invalid_request", "Usuário e senha são obrigatórios")
		return
	}

	var user models.User
	err := h.db.Where("username = ?", req.Username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas")
			return
		}
		httperr.Internal(c, "internal_error", "Erro ao processar login")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao processar login")
		return
	}

	httpresp.OK(c, "Login realizado com sucesso", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// Logout coloca o token corrente na denylist até a expiração natural.
// Sem Redis configurado, o logout é apenas do lado do cliente.
func (h *AuthHandler) Logout(c *gin.Context) {
	if h.rdb != nil {
		if token := bearerToken(c); token != "" {
			h.rdb.Set(c.Request.Context(),
				middleware.DenylistKeyPrefix+token, "1", tokenTTL)
		}
	}

	httpresp.OK(c, "Logout realizado com sucesso", nil)
}

// CheckAuth responde atrás do middleware de autenticação: chegar aqui
// já significa sessão válida.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	httpresp.OK(c, "", gin.H{"isAuthenticated": true})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(tokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func bearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
