package charting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comexflow/import-dashboard-api/internal/domain"
)

func TestService_StatusDoughnut(t *testing.T) {
	service := NewService()

	t.Run("Deve traduzir os códigos de status e montar a rosca", func(t *testing.T) {
		config := service.StatusDoughnut([]domain.ChartSlice{
			{Label: domain.StatusInTransit, Value: 12},
			{Label: domain.StatusCleared, Value: 7},
			{Label: "status_misterioso", Value: 1},
		})

		require.NotNil(t, config)
		assert.Equal(t, domain.ChartTypeDoughnut, config.Type)
		assert.Equal(t, []string{"Em trânsito", "Desembaraçado", "status_misterioso"}, config.Data.Labels)

		require.Len(t, config.Data.Datasets, 1)
		assert.Equal(t, []float64{12, 7, 1}, config.Data.Datasets[0].Data)
		assert.Len(t, config.Data.Datasets[0].BackgroundColor, 3)

		require.NotNil(t, config.Options)
		assert.Equal(t, "70%", config.Options.Cutout)
	})

	t.Run("Deve devolver gráfico vazio sem dados", func(t *testing.T) {
		config := service.StatusDoughnut(nil)

		require.NotNil(t, config)
		assert.Equal(t, domain.ChartTypeDoughnut, config.Type)
		assert.NotNil(t, config.Data.Labels)
		assert.NotNil(t, config.Data.Datasets)
		assert.Empty(t, config.Data.Labels)
		assert.Empty(t, config.Data.Datasets)
	})
}

func TestService_ModalPie(t *testing.T) {
	service := NewService()

	t.Run("Deve montar a pizza com os modais informados", func(t *testing.T) {
		config := service.ModalPie([]domain.ChartSlice{
			{Label: "Marítimo", Value: 30},
			{Label: "Aéreo", Value: 10},
		})

		require.NotNil(t, config)
		assert.Equal(t, domain.ChartTypePie, config.Type)
		assert.Equal(t, []string{"Marítimo", "Aéreo"}, config.Data.Labels)
		require.Len(t, config.Data.Datasets, 1)
		assert.Equal(t, []float64{30, 10}, config.Data.Datasets[0].Data)
	})

	t.Run("Deve devolver gráfico vazio sem dados", func(t *testing.T) {
		config := service.ModalPie([]domain.ChartSlice{})

		require.NotNil(t, config)
		assert.Empty(t, config.Data.Labels)
		assert.Empty(t, config.Data.Datasets)
	})
}

func TestService_MonthlyEvolution(t *testing.T) {
	service := NewService()

	points := []domain.MonthlyPoint{
		{Period: "2025-01", Operations: 8, TotalValue: 120000},
		{Period: "2025-02", Operations: 11, TotalValue: 98000},
	}

	t.Run("Deve montar linha com competências MM/AAAA na granularidade mensal", func(t *testing.T) {
		config := service.MonthlyEvolution(points, domain.GranularityMonth)

		require.NotNil(t, config)
		assert.Equal(t, domain.ChartTypeLine, config.Type)
		assert.Equal(t, []string{"01/2025", "02/2025"}, config.Data.Labels)

		require.Len(t, config.Data.Datasets, 2)
		assert.Equal(t, "Processos", config.Data.Datasets[0].Label)
		assert.Equal(t, []float64{8, 11}, config.Data.Datasets[0].Data)
		assert.Equal(t, []float64{120000, 98000}, config.Data.Datasets[1].Data)

		require.NotNil(t, config.Data.Datasets[0].Fill)
		assert.False(t, *config.Data.Datasets[0].Fill)
		assert.InDelta(t, 0.3, config.Data.Datasets[0].Tension, 0.001)
	})

	t.Run("Deve montar barras com os períodos crus na granularidade semanal", func(t *testing.T) {
		weekly := []domain.MonthlyPoint{
			{Period: "2025-W07", Operations: 3, TotalValue: 40000},
			{Period: "2025-W08", Operations: 5, TotalValue: 52000},
		}

		config := service.MonthlyEvolution(weekly, domain.GranularityWeek)

		require.NotNil(t, config)
		assert.Equal(t, domain.ChartTypeBar, config.Type)
		assert.Equal(t, []string{"2025-W07", "2025-W08"}, config.Data.Labels)
		require.Len(t, config.Data.Datasets, 2)
		assert.Nil(t, config.Data.Datasets[0].Fill)
		assert.NotEmpty(t, config.Data.Datasets[0].BackgroundColor)
	})

	t.Run("Deve devolver gráfico vazio sem pontos", func(t *testing.T) {
		config := service.MonthlyEvolution(nil, domain.GranularityMonth)

		require.NotNil(t, config)
		assert.Equal(t, domain.ChartTypeLine, config.Type)
		assert.Empty(t, config.Data.Labels)
		assert.Empty(t, config.Data.Datasets)
	})
}

func TestService_CountriesBar(t *testing.T) {
	service := NewService()

	t.Run("Deve exibir os maiores países e agregar o restante em Outros", func(t *testing.T) {
		config := service.CountriesBar([]domain.CountrySlice{
			{Country: "China", Count: 40},
			{Country: "Alemanha", Count: 12},
			{Country: "Estados Unidos", Count: 25},
			{Country: "Índia", Count: 9},
			{Country: "Japão", Count: 7},
			{Country: "Coreia do Sul", Count: 4},
			{Country: "México", Count: 2},
		})

		require.NotNil(t, config)
		assert.Equal(t, domain.ChartTypeBar, config.Type)
		require.NotNil(t, config.Options)
		assert.Equal(t, "y", config.Options.IndexAxis)

		assert.Equal(t, []string{"China", "Estados Unidos", "Alemanha", "Índia", "Japão", "Outros"}, config.Data.Labels)
		require.Len(t, config.Data.Datasets, 1)
		assert.Equal(t, []float64{40, 25, 12, 9, 7, 6}, config.Data.Datasets[0].Data)
	})

	t.Run("Não deve criar a fatia Outros quando couberem todos os países", func(t *testing.T) {
		config := service.CountriesBar([]domain.CountrySlice{
			{Country: "China", Count: 10},
			{Country: "Chile", Count: 5},
		})

		require.NotNil(t, config)
		assert.Equal(t, []string{"China", "Chile"}, config.Data.Labels)
		assert.Equal(t, []float64{10, 5}, config.Data.Datasets[0].Data)
	})

	t.Run("Não deve alterar a ordem do slice recebido", func(t *testing.T) {
		countries := []domain.CountrySlice{
			{Country: "Chile", Count: 5},
			{Country: "China", Count: 10},
		}

		service.CountriesBar(countries)

		assert.Equal(t, "Chile", countries[0].Country)
	})

	t.Run("Deve devolver gráfico vazio sem países", func(t *testing.T) {
		config := service.CountriesBar(nil)

		require.NotNil(t, config)
		assert.Empty(t, config.Data.Labels)
		assert.Empty(t, config.Data.Datasets)
	})
}
