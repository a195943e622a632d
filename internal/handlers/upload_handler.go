package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/httperr"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/httpresp"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/upload"
)

type UploadHandler struct {
	uploader *upload.Uploader
}

func NewUploadHandler(uploader *upload.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// UploadImage recebe o campo multipart "image", converte para webp e
// devolve a URL pública para o painel gravar no perfil da massagista.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.uploader == nil {
		httperr.Write(c, http.StatusServiceUnavailable,
			"upload_unavailable", "Armazenamento de imagens não configurado")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Nenhuma imagem foi enviada")
		return
	}

	if fileHeader.Size > upload.MaxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Imagem acima do limite de 10MB")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		httperr.BadRequest(c, "invalid_file_type", "Apenas arquivos de imagem são permitidos")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erro ao fazer upload da imagem")
		return
	}
	defer file.Close()

	imageURL, err := h.uploader.Upload(c.Request.Context(), file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Erro ao fazer upload da imagem")
		return
	}

	httpresp.OK(c, "Imagem enviada com sucesso", gin.H{
		"imageUrl": imageURL,
	})
}
