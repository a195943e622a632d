package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/httperr"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/httpresp"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
)

type ContactHandler struct {
	db *gorm.DB
}

func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

type ContactFormRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Service string `json:"service" binding:"required"`
	Message string `json:"message"`
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req ContactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Erro de validação")
		return
	}

	form := models.ContactForm{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Message: req.Message,
	}

	if err := h.db.Create(&form).Error; err != nil {
		httperr.Internal(c, "failed_to_create_contact", "Erro ao processar o formulário de contato")
		return
	}

	httpresp.Created(c, "Formulário de contato enviado com sucesso", gin.H{
		"id": form.ID,
	})
}

func (h *ContactHandler) List(c *gin.Context) {
	var forms []models.ContactForm
	if err := h.db.Order("created_at DESC").Find(&forms).Error; err != nil {
		httperr.Internal(c, "failed_to_list_contacts", "Erro ao buscar formulários de contato")
		return
	}

	httpresp.OK(c, "", gin.H{"contactForms": forms})
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var form models.ContactForm
	if err := h.db.First(&form, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "contact_not_found", "Formulário não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_contact", "Erro ao buscar formulário de contato")
		return
	}

	httpresp.OK(c, "", gin.H{"contactForm": form})
}
