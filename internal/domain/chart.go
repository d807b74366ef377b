package domain

// Tipos de gráfico suportados pela biblioteca do frontend.
const (
	ChartTypeDoughnut = "doughnut"
	ChartTypePie      = "pie"
	ChartTypeLine     = "line"
	ChartTypeBar      = "bar"
)

// ChartConfig é o objeto de configuração consumido pela biblioteca de
// gráficos do frontend. A API nunca devolve configuração nula: dados
// ausentes viram um gráfico vazio.
type ChartConfig struct {
	Type    string        `json:"type"`
	Data    ChartData     `json:"data"`
	Options *ChartOptions `json:"options,omitempty"`
}

// ChartData segue o formato labels + datasets da biblioteca.
type ChartData struct {
	Labels   []string        `json:"labels"`
	Datasets []*ChartDataset `json:"datasets"`
}

// ChartDataset é uma série de valores com sua aparência.
type ChartDataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor,omitempty"`
	BorderColor     string    `json:"borderColor,omitempty"`
	Fill            *bool     `json:"fill,omitempty"`
	Tension         float64   `json:"tension,omitempty"`
}

// ChartOptions cobre as opções que a dashboard realmente usa.
type ChartOptions struct {
	Responsive bool   `json:"responsive"`
	IndexAxis  string `json:"indexAxis,omitempty"`
	Cutout     string `json:"cutout,omitempty"`
}
