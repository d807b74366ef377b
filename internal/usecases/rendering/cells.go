package rendering

import (
	"github.com/comexflow/import-dashboard-api/internal/domain"
	"github.com/comexflow/import-dashboard-api/pkg/format"
)

// Placeholder exibido quando o processo não tem o campo da coluna
const Placeholder = "-"

// cellBuilder produz o texto de uma célula a partir do processo e da
// sua visão derivada (valores calculados uma vez por registro)
type cellBuilder func(record *domain.OperationRecord, derived *domain.DerivedView) string

// cellBuilders despacha por id de coluna. Ids fora deste mapa rendem
// uma célula com placeholder — nunca um erro, nunca uma linha perdida.
var cellBuilders = map[string]cellBuilder{
	"processo": func(record *domain.OperationRecord, _ *domain.DerivedView) string {
		return orPlaceholder(record.Ref)
	},
	"importador": func(record *domain.OperationRecord, _ *domain.DerivedView) string {
		return stringCell(record.Importer)
	},
	"exportador": func(record *domain.OperationRecord, _ *domain.DerivedView) string {
		return stringCell(record.Exporter)
	},
	"status": func(_ *domain.OperationRecord, derived *domain.DerivedView) string {
		return orPlaceholder(derived.StatusLabel)
	},
	"canal": func(record *domain.OperationRecord, _ *domain.DerivedView) string {
		return stringCell(record.Channel)
	},
	"urf": func(record *domain.OperationRecord, _ *domain.DerivedView) string {
		return stringCell(record.URF)
	},
	"numero_di": func(record *domain.OperationRecord, _ *domain.DerivedView) string {
		return stringCell(record.DINumber)
	},
	"modal": func(record *domain.OperationRecord, _ *domain.DerivedView) string {
		return stringCell(record.Modal)
	},
	"pais_origem": func(record *domain.OperationRecord, _ *domain.DerivedView) string {
		return stringCell(record.OriginCountry)
	},
	"conteineres": func(_ *domain.OperationRecord, derived *domain.DerivedView) string {
		return orPlaceholder(derived.ContainersJoined)
	},
	"peso_bruto": func(record *domain.OperationRecord, _ *domain.DerivedView) string {
		if record.GrossWeight == nil {
			return Placeholder
		}
		return format.Weight(*record.GrossWeight)
	},
	"data_embarque": func(record *domain.OperationRecord, _ *domain.DerivedView) string {
		return dateCell(record.BoardingDate)
	},
	"data_chegada": func(record *domain.OperationRecord, _ *domain.DerivedView) string {
		return dateCell(record.ArrivalDate)
	},
	"data_registro": func(record *domain.OperationRecord, _ *domain.DerivedView) string {
		return dateCell(record.RegistrationDate)
	},
	"data_desembaraco": func(record *domain.OperationRecord, _ *domain.DerivedView) string {
		return dateCell(record.ClearanceDate)
	},
	"produtos": func(_ *domain.OperationRecord, derived *domain.DerivedView) string {
		return orPlaceholder(derived.ProductsSummary)
	},
	"valor_total": func(_ *domain.OperationRecord, derived *domain.DerivedView) string {
		if !derived.HasInvoiceTotal {
			return Placeholder
		}
		return format.Currency(derived.InvoiceTotalBRL)
	},
	"taxa_cambio": func(record *domain.OperationRecord, _ *domain.DerivedView) string {
		if record.ExchangeRate == nil {
			return Placeholder
		}
		return format.Decimal(*record.ExchangeRate, 4)
	},
}

func stringCell(value *string) string {
	if value == nil {
		return Placeholder
	}
	return orPlaceholder(*value)
}

func dateCell(value *string) string {
	if value == nil {
		return Placeholder
	}
	return orPlaceholder(format.DateFromAPI(*value))
}

func orPlaceholder(value string) string {
	if value == "" {
		return Placeholder
	}
	return value
}
