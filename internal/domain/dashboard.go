package domain

// KPISet reúne os indicadores exibidos nos cards do topo da dashboard.
type KPISet struct {
	TotalOperations   int     `json:"total_operations"`
	InTransit         int     `json:"in_transit"`
	AwaitingClearance int     `json:"awaiting_clearance"`
	ClearedThisMonth  int     `json:"cleared_this_month"`
	TotalFOBValue     float64 `json:"total_fob_value"`
}

// ChartSlice é um ponto rotulado de um gráfico de distribuição.
type ChartSlice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSet carrega as distribuições prontas para os gráficos fixos da
// dashboard.
type ChartSet struct {
	StatusDistribution []ChartSlice `json:"status_distribution"`
	ModalSplit         []ChartSlice `json:"modal_split"`
}

// FilterOptions são os valores disponíveis para os seletores de filtro.
type FilterOptions struct {
	Statuses  []string `json:"statuses"`
	Importers []string `json:"importers"`
	Channels  []string `json:"channels"`
	Modals    []string `json:"modals"`
	URFs      []string `json:"urfs"`
}

// OperationsData é a resposta de operações da ComexAPI: uma prévia leve para
// a tabela e o conjunto completo usado pela visão de detalhe.
type OperationsData struct {
	Operations    []*OperationRecord `json:"operations"`
	OperationsAll []*OperationRecord `json:"operations_all"`
}

// BootstrapData é o agregado devolvido pela rota combinada da ComexAPI.
type BootstrapData struct {
	KPIs             *KPISet            `json:"kpis"`
	Charts           *ChartSet          `json:"charts"`
	Operations       []*OperationRecord `json:"operations"`
	FilterOptions    *FilterOptions     `json:"filter_options"`
	CanViewMaterials bool               `json:"can_view_materials"`
}

// Granularidades aceitas pela série de evolução mensal.
const (
	GranularityMonth = "month"
	GranularityWeek  = "week"
)

// MonthlyPoint é um ponto da série de evolução de operações.
type MonthlyPoint struct {
	Period     string  `json:"period"`
	Operations int     `json:"operations"`
	TotalValue float64 `json:"total_value"`
}

// CountrySlice é a participação de um país de origem no total de processos.
type CountrySlice struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}
