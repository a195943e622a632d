package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/config"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextUserRole = "userRole"

	// DenylistKeyPrefix marca tokens invalidados por logout.
	DenylistKeyPrefix = "token_denylist:"
)

// AuthMiddleware valida o bearer token HS256. Com Redis configurado,
// tokens de sessões encerradas via logout também são recusados.
func AuthMiddleware(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid_token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid_token_claims")
			return
		}

		userID, ok1 := claims["sub"].(float64)
		username, _ := claims["username"].(string)
		role, _ := claims["role"].(string)
		if !ok1 {
			abortUnauthorized(c, "invalid_token_payload")
			return
		}

		if rdb != nil {
			revoked, err := rdb.Exists(c.Request.Context(), DenylistKeyPrefix+tokenString).Result()
			if err == nil && revoked > 0 {
				abortUnauthorized(c, "session_ended")
				return
			}
		}

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUsername, username)
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "Não autorizado")
	c.Abort()
}
