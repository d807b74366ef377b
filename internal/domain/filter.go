package domain

import (
	"net/url"
	"strings"
	"time"
)

// FilterState guarda os filtros ativos da dashboard e monta a query string
// repassada para a ComexAPI. Listas de múltipla escolha viajam como valores
// separados por vírgula.
type FilterState struct {
	StartDate *time.Time
	EndDate   *time.Time
	Statuses  []string
	Importers []string
	Channels  []string
	Modals    []string
	URFs      []string

	// StatusTag é o atalho aplicado ao clicar em um card de KPI.
	StatusTag string
}

// QueryValues converte o estado de filtros nos parâmetros aceitos pela
// ComexAPI. Filtros vazios não entram na query.
func (f *FilterState) QueryValues() url.Values {
	values := url.Values{}

	if f == nil {
		return values
	}

	if f.StartDate != nil && !f.StartDate.IsZero() {
		values.Set("start_date", f.StartDate.Format("2006-01-02"))
	}

	if f.EndDate != nil && !f.EndDate.IsZero() {
		values.Set("end_date", f.EndDate.Format("2006-01-02"))
	}

	setJoined(values, "status", f.Statuses)
	setJoined(values, "importer", f.Importers)
	setJoined(values, "channel", f.Channels)
	setJoined(values, "modal", f.Modals)
	setJoined(values, "urf", f.URFs)

	if f.StatusTag != "" {
		values.Set("status_tag", f.StatusTag)
	}

	return values
}

// Reset limpa todos os filtros, voltando a dashboard para a visão padrão.
func (f *FilterState) Reset() {
	if f == nil {
		return
	}

	*f = FilterState{}
}

// IsEmpty indica se nenhum filtro está ativo.
func (f *FilterState) IsEmpty() bool {
	if f == nil {
		return true
	}

	return f.StartDate == nil && f.EndDate == nil &&
		len(f.Statuses) == 0 && len(f.Importers) == 0 &&
		len(f.Channels) == 0 && len(f.Modals) == 0 &&
		len(f.URFs) == 0 && f.StatusTag == ""
}

func setJoined(values url.Values, key string, items []string) {
	if len(items) == 0 {
		return
	}

	values.Set(key, strings.Join(items, ","))
}
