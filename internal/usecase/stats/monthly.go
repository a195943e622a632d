package stats

import (
	"context"
	"sort"
	"time"

	domain "github.com/ClinicaExecutivas/studio-scheduler/internal/domain/appointment"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
)

type ClientVisit struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MonthlyStat struct {
	Month        string        `json:"month"` // YYYY-MM
	Count        int           `json:"count"`
	Clients      []string      `json:"clients"`
	ClientVisits []ClientVisit `json:"clientVisits"`
}

// ======================================================
// USE CASE
// ======================================================

// MonthlyStats agrega os agendamentos por mês-calendário. Nada é
// materializado: cada chamada varre o conjunto completo.
type MonthlyStats struct {
	repo domain.Repository

	// now é trocável nos testes para fixar o mês corrente.
	now func() time.Time
}

func NewMonthlyStats(repo domain.Repository) *MonthlyStats {
	return &MonthlyStats{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *MonthlyStats) Execute(ctx context.Context) ([]MonthlyStat, error) {
	appointments, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return uc.aggregate(appointments), nil
}

func (uc *MonthlyStats) aggregate(appointments []models.Appointment) []MonthlyStat {
	type bucket struct {
		count       int
		clientOrder []string
		clientSeen  map[string]bool
		visits      map[string]int
	}

	buckets := make(map[string]*bucket)

	for _, ap := range appointments {
		date, err := time.Parse("2006-01-02", ap.Date)
		if err != nil {
			continue
		}
		month := date.Format("2006-01")

		b := buckets[month]
		if b == nil {
			b = &bucket{
				clientSeen: make(map[string]bool),
				visits:     make(map[string]int),
			}
			buckets[month] = b
		}

		b.count++
		if !b.clientSeen[ap.ClientName] {
			b.clientSeen[ap.ClientName] = true
			b.clientOrder = append(b.clientOrder, ap.ClientName)
		}
		b.visits[ap.ClientName]++
	}

	// O mês corrente sempre aparece no painel, mesmo zerado.
	currentMonth := uc.now().Format("2006-01")
	if _, ok := buckets[currentMonth]; !ok {
		buckets[currentMonth] = &bucket{
			clientSeen: make(map[string]bool),
			visits:     make(map[string]int),
		}
	}

	out := make([]MonthlyStat, 0, len(buckets))
	for month, b := range buckets {
		visits := make([]ClientVisit, 0, len(b.clientOrder))
		for _, name := range b.clientOrder {
			visits = append(visits, ClientVisit{Name: name, Count: b.visits[name]})
		}
		// Empates mantêm a ordem de primeira visita.
		sort.SliceStable(visits, func(i, j int) bool {
			return visits[i].Count > visits[j].Count
		})

		clients := b.clientOrder
		if clients == nil {
			clients = []string{}
		}

		out = append(out, MonthlyStat{
			Month:        month,
			Count:        b.count,
			Clients:      clients,
			ClientVisits: visits,
		})
	}

	// Mais recente primeiro.
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month > out[j].Month
	})

	return out
}
