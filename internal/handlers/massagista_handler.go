package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/audit"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/httperr"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/httpresp"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
)

type MassagistaHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewMassagistaHandler(db *gorm.DB, audit *audit.Dispatcher) *MassagistaHandler {
	return &MassagistaHandler{db: db, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type MassagistaRequest struct {
	Nome        string `json:"nome" binding:"required"`
	Descricao   string `json:"descricao" binding:"required"`
	FotoURL     string `json:"fotoUrl" binding:"required"`
	VideoURL    string `json:"videoUrl"`
	SuiteMaster *bool  `json:"suiteMaster"`
	Ativa       *bool  `json:"ativa"`
}

// ======================================================
// PUBLIC READS
// ======================================================

func (h *MassagistaHandler) List(c *gin.Context) {
	var massagistas []models.Massagista
	if err := h.db.Find(&massagistas).Error; err != nil {
		httperr.Internal(c, "failed_to_list_massagistas", "Erro ao buscar massagistas")
		return
	}

	httpresp.OK(c, "", gin.H{"massagistas": massagistas})
}

func (h *MassagistaHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var m models.Massagista
	if err := h.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "massagista_not_found", "Massagista não encontrada")
			return
		}
		httperr.Internal(c, "failed_to_get_massagista", "Erro ao buscar massagista")
		return
	}

	httpresp.OK(c, "", gin.H{"massagista": m})
}

// ======================================================
// ADMIN WRITES
// ======================================================

func (h *MassagistaHandler) Create(c *gin.Context) {
	var req MassagistaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Erro de validação")
		return
	}

	m := models.Massagista{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		FotoURL:   req.FotoURL,
		VideoURL:  req.VideoURL,
		Ativa:     true,
	}
	if req.SuiteMaster != nil {
		m.SuiteMaster = *req.SuiteMaster
	}
	if req.Ativa != nil {
		m.Ativa = *req.Ativa
	}

	if err := h.db.Create(&m).Error; err != nil {
		httperr.Internal(c, "failed_to_create_massagista", "Erro ao cadastrar massagista")
		return
	}

	h.dispatch(c, "massagista_created", m.ID)

	httpresp.Created(c, "Massagista cadastrada com sucesso", gin.H{
		"massagista": m,
	})
}

func (h *MassagistaHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		httperr.BadRequest(c, "validation_error", "Erro de validação")
		return
	}

	columns := make(map[string]any, len(fields))
	for name, column := range map[string]string{
		"nome":        "nome",
		"descricao":   "descricao",
		"fotoUrl":     "foto_url",
		"videoUrl":    "video_url",
		"suiteMaster": "suite_master",
		"ativa":       "ativa",
	} {
		if v, ok := fields[name]; ok {
			columns[column] = v
		}
	}

	if len(columns) == 0 {
		httperr.BadRequest(c, "validation_error", "Nenhum campo para atualizar")
		return
	}

	res := h.db.Model(&models.Massagista{}).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_massagista", "Erro ao atualizar massagista")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "massagista_not_found", "Massagista não encontrada")
		return
	}

	var m models.Massagista
	if err := h.db.First(&m, id).Error; err != nil {
		httperr.Internal(c, "failed_to_update_massagista", "Erro ao atualizar massagista")
		return
	}

	h.dispatch(c, "massagista_updated", m.ID)

	httpresp.OK(c, "Massagista atualizada com sucesso", gin.H{
		"massagista": m,
	})
}

func (h *MassagistaHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res := h.db.Delete(&models.Massagista{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_massagista", "Erro ao excluir massagista")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "massagista_not_found", "Massagista não encontrada")
		return
	}

	h.dispatch(c, "massagista_deleted", id)

	httpresp.OK(c, "Massagista excluída com sucesso", nil)
}

func (h *MassagistaHandler) dispatch(c *gin.Context, action string, entityID uint) {
	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "massagista",
		EntityID: &entityID,
	})
}
