package charting

import (
	"sort"

	"github.com/comexflow/import-dashboard-api/internal/domain"
	"github.com/comexflow/import-dashboard-api/pkg/format"
)

// Quantidade de países exibidos individualmente no gráfico de origem;
// o restante é agregado na fatia "Outros"
const topCountriesLimit = 5

// Rótulo da fatia agregada do gráfico de países
const othersLabel = "Outros"

// palette são as cores dos gráficos, aplicadas em ciclo na ordem das fatias
var palette = []string{
	"#2563eb",
	"#16a34a",
	"#f59e0b",
	"#dc2626",
	"#7c3aed",
	"#0891b2",
	"#64748b",
}

// Charter converte os payloads da ComexAPI nos objetos de configuração da
// biblioteca de gráficos do frontend. Payloads vazios ou nulos viram
// configurações de gráfico vazias, nunca nulas.
type Charter interface {
	StatusDoughnut(distribution []domain.ChartSlice) *domain.ChartConfig
	ModalPie(split []domain.ChartSlice) *domain.ChartConfig
	MonthlyEvolution(points []domain.MonthlyPoint, granularity string) *domain.ChartConfig
	CountriesBar(countries []domain.CountrySlice) *domain.ChartConfig
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// StatusDoughnut monta a rosca de distribuição por status. Os códigos de
// status da ComexAPI são traduzidos para os rótulos exibidos.
func (s *Service) StatusDoughnut(distribution []domain.ChartSlice) *domain.ChartConfig {
	options := &domain.ChartOptions{Responsive: true, Cutout: "70%"}

	if len(distribution) == 0 {
		return emptyConfig(domain.ChartTypeDoughnut, options)
	}

	labels := make([]string, 0, len(distribution))
	values := make([]float64, 0, len(distribution))
	for _, slice := range distribution {
		labels = append(labels, domain.StatusLabel(slice.Label))
		values = append(values, slice.Value)
	}

	return &domain.ChartConfig{
		Type: domain.ChartTypeDoughnut,
		Data: domain.ChartData{
			Labels: labels,
			Datasets: []*domain.ChartDataset{
				{Data: values, BackgroundColor: colorsFor(len(values))},
			},
		},
		Options: options,
	}
}

// ModalPie monta a pizza de participação por modal de transporte.
func (s *Service) ModalPie(split []domain.ChartSlice) *domain.ChartConfig {
	options := &domain.ChartOptions{Responsive: true}

	if len(split) == 0 {
		return emptyConfig(domain.ChartTypePie, options)
	}

	labels := make([]string, 0, len(split))
	values := make([]float64, 0, len(split))
	for _, slice := range split {
		labels = append(labels, slice.Label)
		values = append(values, slice.Value)
	}

	return &domain.ChartConfig{
		Type: domain.ChartTypePie,
		Data: domain.ChartData{
			Labels: labels,
			Datasets: []*domain.ChartDataset{
				{Data: values, BackgroundColor: colorsFor(len(values))},
			},
		},
		Options: options,
	}
}

// MonthlyEvolution monta a série de evolução de processos: linha para a
// granularidade mensal, barras para a semanal. Competências mensais são
// reapresentadas como MM/AAAA; períodos semanais saem como chegaram.
func (s *Service) MonthlyEvolution(points []domain.MonthlyPoint, granularity string) *domain.ChartConfig {
	chartType := domain.ChartTypeLine
	if granularity == domain.GranularityWeek {
		chartType = domain.ChartTypeBar
	}

	options := &domain.ChartOptions{Responsive: true}

	if len(points) == 0 {
		return emptyConfig(chartType, options)
	}

	labels := make([]string, 0, len(points))
	operations := make([]float64, 0, len(points))
	totals := make([]float64, 0, len(points))
	for _, point := range points {
		label := point.Period
		if granularity != domain.GranularityWeek {
			label = format.MonthFromAPI(point.Period)
		}

		labels = append(labels, label)
		operations = append(operations, float64(point.Operations))
		totals = append(totals, point.TotalValue)
	}

	operationsSet := &domain.ChartDataset{
		Label:       "Processos",
		Data:        operations,
		BorderColor: palette[0],
	}
	totalsSet := &domain.ChartDataset{
		Label:       "Valor Total (R$)",
		Data:        totals,
		BorderColor: palette[1],
	}

	if chartType == domain.ChartTypeLine {
		fill := false
		operationsSet.Fill = &fill
		operationsSet.Tension = 0.3
		totalsSet.Fill = &fill
		totalsSet.Tension = 0.3
	} else {
		operationsSet.BackgroundColor = []string{palette[0]}
		totalsSet.BackgroundColor = []string{palette[1]}
	}

	return &domain.ChartConfig{
		Type: chartType,
		Data: domain.ChartData{
			Labels:   labels,
			Datasets: []*domain.ChartDataset{operationsSet, totalsSet},
		},
		Options: options,
	}
}

// CountriesBar monta a barra horizontal de países de origem: os maiores
// aparecem individualmente e o restante é agregado em "Outros".
func (s *Service) CountriesBar(countries []domain.CountrySlice) *domain.ChartConfig {
	options := &domain.ChartOptions{Responsive: true, IndexAxis: "y"}

	if len(countries) == 0 {
		return emptyConfig(domain.ChartTypeBar, options)
	}

	ranked := make([]domain.CountrySlice, len(countries))
	copy(ranked, countries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	labels := make([]string, 0, topCountriesLimit+1)
	values := make([]float64, 0, topCountriesLimit+1)

	var others int
	for i, country := range ranked {
		if i < topCountriesLimit {
			labels = append(labels, country.Country)
			values = append(values, float64(country.Count))
			continue
		}

		others += country.Count
	}

	if others > 0 {
		labels = append(labels, othersLabel)
		values = append(values, float64(others))
	}

	return &domain.ChartConfig{
		Type: domain.ChartTypeBar,
		Data: domain.ChartData{
			Labels: labels,
			Datasets: []*domain.ChartDataset{
				{Label: "Processos", Data: values, BackgroundColor: colorsFor(len(values))},
			},
		},
		Options: options,
	}
}

// emptyConfig é o gráfico vazio devolvido quando o payload não tem dados.
// Labels e datasets vêm alocados para o frontend não tratar nulos.
func emptyConfig(chartType string, options *domain.ChartOptions) *domain.ChartConfig {
	return &domain.ChartConfig{
		Type: chartType,
		Data: domain.ChartData{
			Labels:   []string{},
			Datasets: []*domain.ChartDataset{},
		},
		Options: options,
	}
}

func colorsFor(n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}
