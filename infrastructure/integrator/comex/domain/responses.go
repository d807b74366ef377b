package comexdomain

import (
	"github.com/comexflow/import-dashboard-api/internal/domain"
)

// APIResponse é o envelope comum de todas as respostas da ComexAPI.
// `success=false` é uma falha lógica por requisição, não um erro de
// transporte: vem com status 200 e o motivo no campo `error`.
type APIResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// BootstrapResponse é o agregado da rota combinada da dashboard.
type BootstrapResponse struct {
	APIResponse
	KPIs             *domain.KPISet            `json:"kpis"`
	Charts           *domain.ChartSet          `json:"charts"`
	Operations       []*domain.OperationRecord `json:"operations"`
	FilterOptions    *domain.FilterOptions     `json:"filter_options"`
	CanViewMaterials bool                      `json:"can_view_materials"`
}

type KPIsResponse struct {
	APIResponse
	KPIs *domain.KPISet `json:"kpis"`
}

type ChartsResponse struct {
	APIResponse
	Charts *domain.ChartSet `json:"charts"`
}

// OperationsResponse traz a prévia leve e, quando solicitado, o conjunto
// completo de operações usado pelo detalhe do processo.
type OperationsResponse struct {
	APIResponse
	Operations    []*domain.OperationRecord `json:"operations"`
	OperationsAll []*domain.OperationRecord `json:"operations_all"`
}

type FilterOptionsResponse struct {
	APIResponse
	FilterOptions *domain.FilterOptions `json:"filter_options"`
}

type MonthlySeriesResponse struct {
	APIResponse
	Series []domain.MonthlyPoint `json:"series"`
}

type CountriesResponse struct {
	APIResponse
	Countries []domain.CountrySlice `json:"countries"`
}

type RefreshResponse struct {
	APIResponse
	RefreshedAt string `json:"refreshed_at,omitempty"`
}

type DocumentsResponse struct {
	APIResponse
	Documents []*domain.ProcessDocument `json:"documents"`
}

type DocumentResponse struct {
	APIResponse
	Document *domain.ProcessDocument `json:"document"`
}
