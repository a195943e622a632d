package stats

import (
	"context"
	"sort"

	domain "github.com/ClinicaExecutivas/studio-scheduler/internal/domain/appointment"
)

type ClientRank struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Count int    `json:"count"`
}

// ClientRanking agrupa todos os agendamentos por (nome, telefone) e
// ordena por total de visitas; o primeiro é o cliente mais frequente.
type ClientRanking struct {
	repo domain.Repository
}

func NewClientRanking(repo domain.Repository) *ClientRanking {
	return &ClientRanking{repo: repo}
}

func (uc *ClientRanking) Execute(ctx context.Context) ([]ClientRank, error) {
	appointments, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	type key struct {
		name  string
		phone string
	}

	counts := make(map[key]int)
	var order []key

	for _, ap := range appointments {
		k := key{name: ap.ClientName, phone: ap.ClientPhone}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	out := make([]ClientRank, 0, len(order))
	for _, k := range order {
		out = append(out, ClientRank{
			Name:  k.name,
			Phone: k.phone,
			Count: counts[k],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	return out, nil
}
