package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK escreve o envelope de sucesso padrão da API. Campos extras do
// payload são mesclados na raiz da resposta (ex.: "appointment", "referral").
func OK(c *gin.Context, message string, payload gin.H) {
	write(c, http.StatusOK, message, payload)
}

func Created(c *gin.Context, message string, payload gin.H) {
	write(c, http.StatusCreated, message, payload)
}

func write(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}
