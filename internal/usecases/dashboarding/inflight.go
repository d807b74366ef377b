package dashboarding

import (
	"context"
	"sync"
)

// inflightRegistry garante que exista no máximo uma carga em voo por
// recurso lógico: iniciar uma nova cancela o contexto da anterior.
// Assim, trocas rápidas de filtro não deixam uma resposta velha
// sobrescrever o resultado mais novo, independente da ordem de chegada.
type inflightRegistry struct {
	mu      sync.Mutex
	flights map[Kind]*flight
}

type flight struct {
	cancel context.CancelFunc
}

func newInflightRegistry() *inflightRegistry {
	return &inflightRegistry{
		flights: make(map[Kind]*flight),
	}
}

// begin cancela a carga anterior do recurso (se houver) e registra a
// nova. O release devolvido remove o registro — apenas se ele ainda
// pertencer a esta carga — e libera o contexto.
func (r *inflightRegistry) begin(ctx context.Context, kind Kind) (context.Context, func()) {
	flightCtx, cancel := context.WithCancel(ctx)
	current := &flight{cancel: cancel}

	r.mu.Lock()
	if previous, ok := r.flights[kind]; ok {
		previous.cancel()
	}
	r.flights[kind] = current
	r.mu.Unlock()

	release := func() {
		r.mu.Lock()
		if r.flights[kind] == current {
			delete(r.flights, kind)
		}
		r.mu.Unlock()
		cancel()
	}

	return flightCtx, release
}
