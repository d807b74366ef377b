package rendering

import (
	"fmt"
	"sort"
	"strings"

	"github.com/comexflow/import-dashboard-api/internal/domain"
	"github.com/comexflow/import-dashboard-api/pkg/format"
)

// Cell é uma célula da tabela de operações, já formatada para exibição
type Cell struct {
	ColumnID string `json:"column_id"`
	Value    string `json:"value"`
}

// Row é uma linha da tabela. SortValues carrega os valores crus por campo de
// ordenação para que o front ordene sem reparsear os textos formatados.
type Row struct {
	Ref        string         `json:"ref"`
	Cells      []Cell         `json:"cells"`
	SortValues map[string]any `json:"sort_values,omitempty"`
}

// Header descreve uma coluna visível da tabela.
type Header struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Sortable  bool   `json:"sortable"`
	SortField string `json:"sort_field,omitempty"`
}

// Table é a tabela de operações pronta para renderização.
type Table struct {
	Headers []Header `json:"headers"`
	Rows    []Row    `json:"rows"`
}

// Renderer monta as visões de exibição da dashboard a partir dos processos
// crus da ComexAPI: a tabela de operações e o detalhe de um processo.
type Renderer interface {
	Table(records []*domain.OperationRecord, defs []domain.ColumnDefinition) *Table
	Detail(record *domain.OperationRecord, entitlements domain.Entitlements) *domain.DetailView
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Table monta a tabela de operações com as colunas visíveis informadas.
// As linhas saem ordenadas da chegada mais recente para a mais antiga;
// processos sem data de chegada vão para o fim. O slice recebido não é
// alterado: a prévia pode ser o próprio conteúdo do cache.
func (s *Service) Table(records []*domain.OperationRecord, defs []domain.ColumnDefinition) *Table {
	table := &Table{
		Headers: make([]Header, 0, len(defs)),
		Rows:    make([]Row, 0, len(records)),
	}

	for _, def := range defs {
		table.Headers = append(table.Headers, Header{
			ID:        def.ID,
			Label:     def.Label,
			Sortable:  def.Sortable,
			SortField: def.SortField,
		})
	}

	ordered := make([]*domain.OperationRecord, len(records))
	copy(ordered, records)

	sort.SliceStable(ordered, func(i, j int) bool {
		return arrivalSortKey(ordered[i]) > arrivalSortKey(ordered[j])
	})

	for _, record := range ordered {
		if record == nil {
			continue
		}

		table.Rows = append(table.Rows, s.buildRow(record, defs))
	}

	return table
}

func (s *Service) buildRow(record *domain.OperationRecord, defs []domain.ColumnDefinition) Row {
	derived := domain.BuildDerivedView(record)

	row := Row{
		Ref:        record.Ref,
		Cells:      make([]Cell, 0, len(defs)),
		SortValues: make(map[string]any, len(defs)),
	}

	for _, def := range defs {
		value := Placeholder
		if builder, ok := cellBuilders[def.ID]; ok {
			value = builder(record, derived)
		}

		row.Cells = append(row.Cells, Cell{ColumnID: def.ID, Value: value})

		if def.Sortable && def.SortField != "" {
			row.SortValues[def.SortField] = sortValue(def.SortField, record, derived)
		}
	}

	return row
}

// arrivalSortKey reduz a data de chegada a uma chave ordenável. Datas ISO
// ordenam lexicograficamente; ausentes ordenam atrás de qualquer data.
func arrivalSortKey(record *domain.OperationRecord) string {
	if record == nil || record.ArrivalDate == nil {
		return ""
	}

	return *record.ArrivalDate
}

// sortValue devolve o valor cru usado pelo front para ordenar a coluna.
// Campos ausentes viram nil e o front os empurra para o fim.
func sortValue(field string, record *domain.OperationRecord, derived *domain.DerivedView) any {
	switch field {
	case "ref":
		return record.Ref
	case "importer":
		return stringSortValue(record.Importer)
	case "exporter":
		return stringSortValue(record.Exporter)
	case "status_label":
		return emptyAsNil(derived.StatusLabel)
	case "channel":
		return stringSortValue(record.Channel)
	case "urf":
		return stringSortValue(record.URF)
	case "di_number":
		return stringSortValue(record.DINumber)
	case "modal":
		return stringSortValue(record.Modal)
	case "origin_country":
		return stringSortValue(record.OriginCountry)
	case "container_values":
		return emptyAsNil(derived.ContainersJoined)
	case "gross_weight":
		if record.GrossWeight == nil {
			return nil
		}
		return format.NormalizeWeight(*record.GrossWeight)
	case "boarding_date":
		return stringSortValue(record.BoardingDate)
	case "arrival_date":
		return stringSortValue(record.ArrivalDate)
	case "registration_date":
		return stringSortValue(record.RegistrationDate)
	case "clearance_date":
		return stringSortValue(record.ClearanceDate)
	case "products_summary":
		return emptyAsNil(derived.ProductsSummary)
	case "invoice_total":
		if !derived.HasInvoiceTotal {
			return nil
		}
		return derived.InvoiceTotalBRL
	case "exchange_rate":
		if record.ExchangeRate == nil {
			return nil
		}
		return *record.ExchangeRate
	}

	return nil
}

func stringSortValue(value *string) any {
	if value == nil {
		return nil
	}

	return emptyAsNil(*value)
}

func emptyAsNil(value string) any {
	if value == "" {
		return nil
	}

	return value
}

// Detail monta a visão do modal de detalhe do processo. Campos ausentes
// aparecem como "-"; a aba de materiais e valores só é montada para
// usuários com a permissão de visualizar materiais.
func (s *Service) Detail(record *domain.OperationRecord, entitlements domain.Entitlements) *domain.DetailView {
	if record == nil {
		return nil
	}

	derived := domain.BuildDerivedView(record)

	view := &domain.DetailView{
		Ref:   record.Ref,
		Title: "Processo " + record.Ref,
		Sections: []*domain.DetailSection{
			generalSection(record, derived),
			cargoSection(record),
			datesSection(record),
		},
	}

	if entitlements.CanViewMaterials {
		view.Sections = append(view.Sections, materialsSection(record, derived))
	}

	return view
}

func generalSection(record *domain.OperationRecord, derived *domain.DerivedView) *domain.DetailSection {
	return &domain.DetailSection{
		ID:    domain.DetailSectionGeneral,
		Title: "Dados Gerais",
		Fields: []domain.DetailField{
			{Label: "Processo", Value: orPlaceholder(record.Ref)},
			{Label: "Importador", Value: stringCell(record.Importer)},
			{Label: "Exportador", Value: stringCell(record.Exporter)},
			{Label: "Status", Value: orPlaceholder(derived.StatusLabel)},
			{Label: "Canal", Value: stringCell(record.Channel)},
			{Label: "URF", Value: stringCell(record.URF)},
			{Label: "Nº DI", Value: stringCell(record.DINumber)},
		},
	}
}

func cargoSection(record *domain.OperationRecord) *domain.DetailSection {
	return &domain.DetailSection{
		ID:    domain.DetailSectionCargo,
		Title: "Carga",
		Fields: []domain.DetailField{
			{Label: "Modal", Value: stringCell(record.Modal)},
			{Label: "País de Origem", Value: stringCell(record.OriginCountry)},
			{Label: "Contêineres", Value: orPlaceholder(detailContainers(record.Containers))},
			{Label: "Peso Bruto", Value: weightField(record.GrossWeight)},
		},
	}
}

func datesSection(record *domain.OperationRecord) *domain.DetailSection {
	return &domain.DetailSection{
		ID:    domain.DetailSectionDates,
		Title: "Datas",
		Fields: []domain.DetailField{
			{Label: "Embarque", Value: dateCell(record.BoardingDate)},
			{Label: "Chegada", Value: dateCell(record.ArrivalDate)},
			{Label: "Registro DI", Value: dateCell(record.RegistrationDate)},
			{Label: "Desembaraço", Value: dateCell(record.ClearanceDate)},
		},
	}
}

func materialsSection(record *domain.OperationRecord, derived *domain.DerivedView) *domain.DetailSection {
	section := &domain.DetailSection{
		ID:    domain.DetailSectionMaterials,
		Title: "Materiais e Valores",
	}

	for i, product := range record.Products {
		section.Fields = append(section.Fields, domain.DetailField{
			Label: fmt.Sprintf("Item %d", i+1),
			Value: describeProduct(product),
		})
	}

	for i, invoice := range record.Invoices {
		label := "Fatura " + invoice.Number
		if invoice.Number == "" {
			label = fmt.Sprintf("Fatura %d", i+1)
		}

		section.Fields = append(section.Fields, domain.DetailField{
			Label: label,
			Value: invoiceAmount(invoice),
		})
	}

	total := Placeholder
	if derived.HasInvoiceTotal {
		total = format.Currency(derived.InvoiceTotalBRL)
	}

	rate := Placeholder
	if record.ExchangeRate != nil {
		rate = format.Decimal(*record.ExchangeRate, 4)
	}

	section.Fields = append(section.Fields,
		domain.DetailField{Label: "Valor Total", Value: total},
		domain.DetailField{Label: "Taxa de Câmbio", Value: rate},
	)

	return section
}

// detailContainers lista os contêineres com o tipo entre parênteses, que o
// modal tem espaço para mostrar (a célula da tabela traz só os números).
func detailContainers(containers []domain.Container) string {
	parts := make([]string, 0, len(containers))
	for _, container := range containers {
		if container.Number == "" {
			continue
		}

		if container.Type != "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", container.Number, container.Type))
			continue
		}

		parts = append(parts, container.Number)
	}

	return strings.Join(parts, ", ")
}

func describeProduct(product domain.ProductLine) string {
	parts := make([]string, 0, 3)

	description := product.Description
	if description == "" {
		description = product.Code
	}
	if description != "" {
		parts = append(parts, description)
	}

	if product.NCM != "" {
		parts = append(parts, "NCM "+product.NCM)
	}

	if product.Quantity > 0 {
		parts = append(parts, format.Decimal(product.Quantity, 0)+" un")
	}

	if len(parts) == 0 {
		return Placeholder
	}

	return strings.Join(parts, ", ")
}

// invoiceAmount formata o valor da fatura na moeda original. Faturas em
// reais usam o formato monetário completo.
func invoiceAmount(invoice domain.Invoice) string {
	if invoice.Currency == "" || strings.EqualFold(invoice.Currency, "BRL") {
		return format.Currency(invoice.Amount)
	}

	return invoice.Currency + " " + format.Decimal(invoice.Amount, 2)
}

func weightField(weight *float64) string {
	if weight == nil {
		return Placeholder
	}

	return format.Weight(*weight) + " kg"
}
