package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/httperr"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/httpresp"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/middleware"
	ucAppointment "github.com/ClinicaExecutivas/studio-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC   *ucAppointment.CreateAppointment
	confirmUC  *ucAppointment.ConfirmAppointment
	cancelUC   *ucAppointment.CancelAppointment
	completeUC *ucAppointment.CompleteAppointment
	updateUC   *ucAppointment.UpdateAppointment
	deleteUC   *ucAppointment.DeleteAppointment
	listUC     *ucAppointment.ListAppointments
	getUC      *ucAppointment.GetAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	confirmUC *ucAppointment.ConfirmAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
	getUC *ucAppointment.GetAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:   createUC,
		confirmUC:  confirmUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		listUC:     listUC,
		getUC:      getUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"clientName" binding:"required"`
	ClientPhone string `json:"clientPhone" binding:"required"`
	ClientEmail string `json:"clientEmail"`
	Service     string `json:"service" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Duration    int    `json:"duration" binding:"required"`
	Notes       string `json:"notes"`
	ReferredBy  string `json:"referredBy"`
}

// ======================================================
// CREATE (público)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Erro de validação")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		Service:     req.Service,
		Date:        req.Date,
		Time:        req.Time,
		Duration:    req.Duration,
		Notes:       req.Notes,
		ReferredBy:  req.ReferredBy,
	})
	if err != nil {
		if be, ok := businessCode(err); ok {
			httperr.BadRequest(c, be, "Erro de validação")
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento")
		return
	}

	httpresp.Created(c, "Agendamento criado com sucesso", gin.H{
		"appointment": ap,
	})
}

// ======================================================
// READS
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	date := c.Query("date")

	appointments, err := h.listUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao buscar agendamentos")
		return
	}

	httpresp.OK(c, "", gin.H{"appointments": appointments})
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento")
		return
	}
	if ap == nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
		return
	}

	httpresp.OK(c, "", gin.H{"appointment": ap})
}

// ======================================================
// MUTATIONS (admin)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		httperr.BadRequest(c, "validation_error", "Erro de validação")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), currentUserID(c), id, fields)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
			return
		}
		if be, ok := businessCode(err); ok {
			httperr.BadRequest(c, be, "Erro de validação")
			return
		}
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento")
		return
	}

	httpresp.OK(c, "Agendamento atualizado com sucesso", gin.H{
		"appointment": ap,
	})
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	err := h.deleteUC.Execute(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao excluir agendamento")
		return
	}

	httpresp.OK(c, "Agendamento excluído com sucesso", nil)
}

// Confirm devolve também o registro de indicação, para a recepção
// apresentar o código ao cliente.
func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, ref, err := h.confirmUC.Execute(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Agendamento não pode ser confirmado")
			return
		}
		httperr.Internal(c, "failed_to_confirm_appointment", "Erro ao confirmar agendamento")
		return
	}

	httpresp.OK(c, "Agendamento confirmado com sucesso", gin.H{
		"appointment": ap,
		"referral":    ref,
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Agendamento não pode ser cancelado")
			return
		}
		httperr.Internal(c, "failed_to_cancel_appointment", "Erro ao cancelar agendamento")
		return
	}

	httpresp.OK(c, "Agendamento cancelado com sucesso", gin.H{
		"appointment": ap,
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Agendamento não pode ser concluído")
			return
		}
		httperr.Internal(c, "failed_to_complete_appointment", "Erro ao concluir agendamento")
		return
	}

	httpresp.OK(c, "Agendamento concluído com sucesso", gin.H{
		"appointment": ap,
	})
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido")
		return 0, false
	}
	return uint(id), true
}

func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func businessCode(err error) (string, bool) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
