package columns

import (
	"github.com/comexflow/import-dashboard-api/internal/domain"
)

// registry é o universo de colunas exibíveis da tabela de operações.
// A ordem declarada aqui é a ordem padrão da tabela; colunas fixas não
// podem ser ocultadas pelo usuário. Colunas da categoria "restricted"
// só aparecem para usuários com a permissão can_view_materials.
var registry = []domain.ColumnDefinition{
	{ID: "processo", Label: "Processo", Visible: true, Fixed: true, Sortable: true, SortField: "ref", Category: domain.ColumnCategoryGeneral, Order: 0},
	{ID: "importador", Label: "Importador", Visible: true, Sortable: true, SortField: "importer", Category: domain.ColumnCategoryGeneral, Order: 1},
	{ID: "exportador", Label: "Exportador", Visible: false, Sortable: true, SortField: "exporter", Category: domain.ColumnCategoryGeneral, Order: 2},
	{ID: "status", Label: "Status", Visible: true, Sortable: true, SortField: "status_label", Category: domain.ColumnCategoryGeneral, Order: 3},
	{ID: "canal", Label: "Canal", Visible: true, Sortable: true, SortField: "channel", Category: domain.ColumnCategoryGeneral, Order: 4},
	{ID: "urf", Label: "URF", Visible: false, Sortable: true, SortField: "urf", Category: domain.ColumnCategoryGeneral, Order: 5},
	{ID: "numero_di", Label: "Nº DI", Visible: true, Sortable: true, SortField: "di_number", Category: domain.ColumnCategoryGeneral, Order: 6},
	{ID: "modal", Label: "Modal", Visible: true, Sortable: true, SortField: "modal", Category: domain.ColumnCategoryCargo, Order: 7},
	{ID: "pais_origem", Label: "País de Origem", Visible: false, Sortable: true, SortField: "origin_country", Category: domain.ColumnCategoryCargo, Order: 8},
	{ID: "conteineres", Label: "Contêineres", Visible: true, Sortable: true, SortField: "container_values", Category: domain.ColumnCategoryCargo, Order: 9},
	{ID: "peso_bruto", Label: "Peso Bruto (kg)", Visible: false, Sortable: true, SortField: "gross_weight", Category: domain.ColumnCategoryCargo, Order: 10},
	{ID: "data_embarque", Label: "Embarque", Visible: false, Sortable: true, SortField: "boarding_date", Category: domain.ColumnCategoryDates, Order: 11},
	{ID: "data_chegada", Label: "Chegada", Visible: true, Sortable: true, SortField: "arrival_date", Category: domain.ColumnCategoryDates, Order: 12},
	{ID: "data_registro", Label: "Registro DI", Visible: false, Sortable: true, SortField: "registration_date", Category: domain.ColumnCategoryDates, Order: 13},
	{ID: "data_desembaraco", Label: "Desembaraço", Visible: true, Sortable: true, SortField: "clearance_date", Category: domain.ColumnCategoryDates, Order: 14},
	{ID: "produtos", Label: "Materiais", Visible: false, Sortable: true, SortField: "products_summary", Category: domain.ColumnCategoryRestricted, Order: 15},
	{ID: "valor_total", Label: "Valor Total (R$)", Visible: true, Sortable: true, SortField: "invoice_total", Category: domain.ColumnCategoryRestricted, Order: 16},
	{ID: "taxa_cambio", Label: "Taxa de Câmbio", Visible: false, Sortable: true, SortField: "exchange_rate", Category: domain.ColumnCategoryRestricted, Order: 17},
}

// registryIndex resolve id -> definição sem varrer o slice
var registryIndex = buildRegistryIndex()

func buildRegistryIndex() map[string]domain.ColumnDefinition {
	index := make(map[string]domain.ColumnDefinition, len(registry))
	for _, def := range registry {
		index[def.ID] = def
	}
	return index
}

// DefinitionByID retorna a definição da coluna, se existir no registro
func DefinitionByID(id string) (domain.ColumnDefinition, bool) {
	def, ok := registryIndex[id]
	return def, ok
}
