package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/httperr"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/httpresp"
	ucAppointment "github.com/ClinicaExecutivas/studio-scheduler/internal/usecase/appointment"
	ucStats "github.com/ClinicaExecutivas/studio-scheduler/internal/usecase/stats"
)

type StatsHandler struct {
	monthlyUC *ucStats.MonthlyStats
	rankingUC *ucStats.ClientRanking
	listUC    *ucAppointment.ListAppointments
}

func NewStatsHandler(
	monthlyUC *ucStats.MonthlyStats,
	rankingUC *ucStats.ClientRanking,
	listUC *ucAppointment.ListAppointments,
) *StatsHandler {
	return &StatsHandler{
		monthlyUC: monthlyUC,
		rankingUC: rankingUC,
		listUC:    listUC,
	}
}

func (h *StatsHandler) Monthly(c *gin.Context) {
	stats, err := h.monthlyUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Erro ao buscar estatísticas mensais")
		return
	}

	httpresp.OK(c, "", gin.H{"monthlyStats": stats})
}

func (h *StatsHandler) ClientRanking(c *gin.Context) {
	ranking, err := h.rankingUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Erro ao buscar ranking de clientes")
		return
	}

	httpresp.OK(c, "", gin.H{"clientRanking": ranking})
}

// ClientHistory devolve o conjunto completo de agendamentos para a tela
// de histórico do painel.
func (h *StatsHandler) ClientHistory(c *gin.Context) {
	history, err := h.listUC.Execute(c.Request.Context(), "")
	if err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Erro ao buscar histórico de clientes")
		return
	}

	httpresp.OK(c, "", gin.H{"clientHistory": history})
}
