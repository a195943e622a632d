package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	domainReferral "github.com/ClinicaExecutivas/studio-scheduler/internal/domain/referral"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/httperr"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/httpresp"
	ucReferral "github.com/ClinicaExecutivas/studio-scheduler/internal/usecase/referral"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/validators"
)

type ReferralHandler struct {
	issueUC  *ucReferral.IssueCode
	redeemUC *ucReferral.RedeemDiscount
	checkUC  *ucReferral.CheckCode
	listUC   *ucReferral.ListReferrals
}

func NewReferralHandler(
	issueUC *ucReferral.IssueCode,
	redeemUC *ucReferral.RedeemDiscount,
	checkUC *ucReferral.CheckCode,
	listUC *ucReferral.ListReferrals,
) *ReferralHandler {
	return &ReferralHandler{
		issueUC:  issueUC,
		redeemUC: redeemUC,
		checkUC:  checkUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type GenerateCodeRequest struct {
	ClientName  string `json:"clientName" binding:"required"`
	ClientPhone string `json:"clientPhone" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ReferralHandler) List(c *gin.Context) {
	referrals, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_referrals", "Erro ao buscar indicações")
		return
	}

	httpresp.OK(c, "", gin.H{"referrals": referrals})
}

// Check informa ao formulário público se um código existe; código
// inexistente não é erro, é `valid: false`.
func (h *ReferralHandler) Check(c *gin.Context) {
	code := c.Param("code")

	ref, err := h.checkUC.Execute(c.Request.Context(), code)
	if err != nil {
		httperr.Internal(c, "failed_to_check_code", "Erro ao verificar código de indicação")
		return
	}

	if ref == nil {
		httpresp.OK(c, "", gin.H{"valid": false})
		return
	}

	httpresp.OK(c, "", gin.H{
		"valid": true,
		"referral": gin.H{
			"name": ref.ClientName,
			"code": ref.ReferralCode,
		},
	})
}

// Generate emite (ou reapresenta) o código de indicação de um cliente.
func (h *ReferralHandler) Generate(c *gin.Context) {
	var req GenerateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Nome e telefone são obrigatórios")
		return
	}

	phone, ok := validators.NormalizePhone(req.ClientPhone)
	if !ok {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido")
		return
	}

	ref, err := h.issueUC.Execute(c.Request.Context(), req.ClientName, phone)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_code", "Erro ao gerar código de indicação")
		return
	}

	httpresp.OK(c, "Código de referência gerado com sucesso", gin.H{
		"referralCode": ref.ReferralCode,
	})
}

// UseDiscount consome um crédito de desconto do registro indicado.
func (h *ReferralHandler) UseDiscount(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ref, err := h.redeemUC.Execute(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, domainReferral.ErrNotFound):
			httperr.NotFound(c, "referral_not_found", "Referência não encontrada")
		case errors.Is(err, domainReferral.ErrInsufficientCredit):
			httperr.BadRequest(c, "no_discounts_available", "Cliente não possui descontos disponíveis")
		default:
			httperr.Internal(c, "failed_to_use_discount", "Erro ao utilizar desconto")
		}
		return
	}

	httpresp.OK(c, "Desconto utilizado com sucesso", gin.H{
		"referral": ref,
	})
}
