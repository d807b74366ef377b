package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comexflow/import-dashboard-api/internal/domain"
	"github.com/comexflow/import-dashboard-api/internal/usecases/columns"
)

func allColumns(t *testing.T) []domain.ColumnDefinition {
	t.Helper()

	return columns.NewService(nil).Registry(domain.Entitlements{CanViewMaterials: true})
}

func fullRecord() *domain.OperationRecord {
	return &domain.OperationRecord{
		Ref:              "IMP-2025-0042",
		Importer:         stringPtr("Metalsul Indústria Ltda"),
		Exporter:         stringPtr("Shanghai Steel Co"),
		Status:           stringPtr(domain.StatusCleared),
		Channel:          stringPtr("verde"),
		URF:              stringPtr("Porto de Santos"),
		Modal:            stringPtr("Marítimo"),
		OriginCountry:    stringPtr("China"),
		DINumber:         stringPtr("25/1234567-8"),
		BoardingDate:     stringPtr("2025-01-10"),
		ArrivalDate:      stringPtr("2025-02-20"),
		RegistrationDate: stringPtr("2025-02-22"),
		ClearanceDate:    stringPtr("2025-02-25"),
		ExchangeRate:     floatPtr(5.1234),
		GrossWeight:      floatPtr(12500),
		Containers: []domain.Container{
			{Number: "MSKU1234567", Type: "40HC"},
			{Number: "MSKU7654321", Type: "20DRY"},
		},
		Invoices: []domain.Invoice{
			{Number: "INV-001", Amount: 1000, Currency: "USD"},
			{Number: "INV-002", Amount: 500, Currency: "BRL"},
		},
		Products: []domain.ProductLine{
			{Code: "P-01", Description: "Chapas de aço", NCM: "7208.51.00", Quantity: 120},
			{Code: "P-02", Description: "Bobinas", NCM: "7209.16.00", Quantity: 30},
		},
	}
}

func cellValue(t *testing.T, row Row, columnID string) string {
	t.Helper()

	for _, cell := range row.Cells {
		if cell.ColumnID == columnID {
			return cell.Value
		}
	}

	t.Fatalf("coluna %s não encontrada na linha", columnID)
	return ""
}

func TestService_Table(t *testing.T) {
	service := NewService()

	t.Run("Deve renderizar placeholder em todas as colunas de um processo sem dados", func(t *testing.T) {
		defs := allColumns(t)
		table := service.Table([]*domain.OperationRecord{{Ref: "IMP-2025-0001"}}, defs)

		require.Len(t, table.Rows, 1)
		require.Len(t, table.Rows[0].Cells, len(defs))

		for _, cell := range table.Rows[0].Cells {
			if cell.ColumnID == "processo" {
				assert.Equal(t, "IMP-2025-0001", cell.Value)
				continue
			}

			assert.Equalf(t, Placeholder, cell.Value, "coluna %s deveria degradar para placeholder", cell.ColumnID)
		}
	})

	t.Run("Deve formatar as células nos padrões brasileiros", func(t *testing.T) {
		table := service.Table([]*domain.OperationRecord{fullRecord()}, allColumns(t))

		require.Len(t, table.Rows, 1)
		row := table.Rows[0]

		assert.Equal(t, "Desembaraçado", cellValue(t, row, "status"))
		assert.Equal(t, "MSKU1234567, MSKU7654321", cellValue(t, row, "conteineres"))
		assert.Equal(t, "12.500", cellValue(t, row, "peso_bruto"))
		assert.Equal(t, "20/02/2025", cellValue(t, row, "data_chegada"))
		assert.Equal(t, "Chapas de aço (+1 itens)", cellValue(t, row, "produtos"))
		// 1000 USD * 5,1234 + 500 BRL
		assert.Equal(t, "R$ 5.623,40", cellValue(t, row, "valor_total"))
		assert.Equal(t, "5,1234", cellValue(t, row, "taxa_cambio"))
	})

	t.Run("Deve ordenar as linhas da chegada mais recente para a mais antiga", func(t *testing.T) {
		records := []*domain.OperationRecord{
			{Ref: "IMP-A", ArrivalDate: stringPtr("2025-01-10")},
			{Ref: "IMP-B", ArrivalDate: stringPtr("2025-03-05")},
			{Ref: "IMP-C"},
			{Ref: "IMP-D", ArrivalDate: stringPtr("2025-02-01")},
		}

		table := service.Table(records, allColumns(t))

		refs := make([]string, 0, len(table.Rows))
		for _, row := range table.Rows {
			refs = append(refs, row.Ref)
		}

		assert.Equal(t, []string{"IMP-B", "IMP-D", "IMP-A", "IMP-C"}, refs)
	})

	t.Run("Não deve alterar a ordem do slice recebido", func(t *testing.T) {
		records := []*domain.OperationRecord{
			{Ref: "IMP-A", ArrivalDate: stringPtr("2025-01-10")},
			{Ref: "IMP-B", ArrivalDate: stringPtr("2025-03-05")},
		}

		service.Table(records, allColumns(t))

		assert.Equal(t, "IMP-A", records[0].Ref)
		assert.Equal(t, "IMP-B", records[1].Ref)
	})

	t.Run("Deve montar os cabeçalhos apenas com as colunas informadas", func(t *testing.T) {
		defs := []domain.ColumnDefinition{
			{ID: "processo", Label: "Processo", Sortable: true, SortField: "ref"},
			{ID: "data_chegada", Label: "Chegada", Sortable: true, SortField: "arrival_date"},
		}

		table := service.Table(nil, defs)

		require.Len(t, table.Headers, 2)
		assert.Equal(t, Header{ID: "processo", Label: "Processo", Sortable: true, SortField: "ref"}, table.Headers[0])
		assert.Equal(t, Header{ID: "data_chegada", Label: "Chegada", Sortable: true, SortField: "arrival_date"}, table.Headers[1])
		assert.Empty(t, table.Rows)
	})

	t.Run("Deve expor valores crus de ordenação por campo", func(t *testing.T) {
		table := service.Table([]*domain.OperationRecord{fullRecord()}, allColumns(t))

		require.Len(t, table.Rows, 1)
		values := table.Rows[0].SortValues

		assert.Equal(t, "IMP-2025-0042", values["ref"])
		assert.Equal(t, "2025-02-20", values["arrival_date"])
		assert.Equal(t, 12500.0, values["gross_weight"])
		assert.Equal(t, 5623.4, values["invoice_total"])
	})

	t.Run("Deve expor nil como valor de ordenação de campos ausentes", func(t *testing.T) {
		table := service.Table([]*domain.OperationRecord{{Ref: "IMP-2025-0001"}}, allColumns(t))

		require.Len(t, table.Rows, 1)
		values := table.Rows[0].SortValues

		assert.Nil(t, values["arrival_date"])
		assert.Nil(t, values["invoice_total"])
		assert.Nil(t, values["gross_weight"])
	})

	t.Run("Deve renderizar placeholder para coluna desconhecida", func(t *testing.T) {
		defs := []domain.ColumnDefinition{{ID: "coluna_inexistente", Label: "???"}}

		table := service.Table([]*domain.OperationRecord{fullRecord()}, defs)

		require.Len(t, table.Rows, 1)
		assert.Equal(t, Placeholder, table.Rows[0].Cells[0].Value)
	})
}

func TestService_Detail(t *testing.T) {
	service := NewService()

	t.Run("Deve montar todas as seções para usuário com permissão de materiais", func(t *testing.T) {
		view := service.Detail(fullRecord(), domain.Entitlements{CanViewMaterials: true})

		require.NotNil(t, view)
		assert.Equal(t, "IMP-2025-0042", view.Ref)
		assert.Equal(t, "Processo IMP-2025-0042", view.Title)

		require.Len(t, view.Sections, 4)
		assert.Equal(t, domain.DetailSectionGeneral, view.Sections[0].ID)
		assert.Equal(t, domain.DetailSectionCargo, view.Sections[1].ID)
		assert.Equal(t, domain.DetailSectionDates, view.Sections[2].ID)
		assert.Equal(t, domain.DetailSectionMaterials, view.Sections[3].ID)
	})

	t.Run("Deve omitir a seção de materiais sem a permissão", func(t *testing.T) {
		view := service.Detail(fullRecord(), domain.Entitlements{})

		require.NotNil(t, view)
		require.Len(t, view.Sections, 3)
		for _, section := range view.Sections {
			assert.NotEqual(t, domain.DetailSectionMaterials, section.ID)
		}
	})

	t.Run("Deve traduzir o status e formatar os valores da seção de materiais", func(t *testing.T) {
		view := service.Detail(fullRecord(), domain.Entitlements{CanViewMaterials: true})

		general := view.Sections[0]
		assert.Contains(t, general.Fields, domain.DetailField{Label: "Status", Value: "Desembaraçado"})
		assert.Contains(t, general.Fields, domain.DetailField{Label: "Nº DI", Value: "25/1234567-8"})

		cargo := view.Sections[1]
		assert.Contains(t, cargo.Fields, domain.DetailField{Label: "Contêineres", Value: "MSKU1234567 (40HC), MSKU7654321 (20DRY)"})
		assert.Contains(t, cargo.Fields, domain.DetailField{Label: "Peso Bruto", Value: "12.500 kg"})

		materials := view.Sections[3]
		assert.Contains(t, materials.Fields, domain.DetailField{Label: "Item 1", Value: "Chapas de aço, NCM 7208.51.00, 120 un"})
		assert.Contains(t, materials.Fields, domain.DetailField{Label: "Fatura INV-001", Value: "USD 1.000,00"})
		assert.Contains(t, materials.Fields, domain.DetailField{Label: "Fatura INV-002", Value: "R$ 500,00"})
		assert.Contains(t, materials.Fields, domain.DetailField{Label: "Valor Total", Value: "R$ 5.623,40"})
		assert.Contains(t, materials.Fields, domain.DetailField{Label: "Taxa de Câmbio", Value: "5,1234"})
	})

	t.Run("Deve preencher placeholders em um processo sem dados", func(t *testing.T) {
		view := service.Detail(&domain.OperationRecord{Ref: "IMP-2025-0001"}, domain.Entitlements{CanViewMaterials: true})

		require.Len(t, view.Sections, 4)
		for _, section := range view.Sections {
			for _, field := range section.Fields {
				if field.Label == "Processo" {
					assert.Equal(t, "IMP-2025-0001", field.Value)
					continue
				}

				assert.Equalf(t, Placeholder, field.Value, "campo %s da seção %s deveria degradar para placeholder", field.Label, section.ID)
			}
		}
	})

	t.Run("Deve devolver nil para processo nulo", func(t *testing.T) {
		assert.Nil(t, service.Detail(nil, domain.Entitlements{CanViewMaterials: true}))
	})
}

func stringPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}
