package domain

import (
	"fmt"
	"strings"

	"github.com/comexflow/import-dashboard-api/pkg/utils"
)

// Status de processo conhecidos da ComexAPI
const (
	StatusAwaitingBoarding = "aguardando_embarque"
	StatusInTransit        = "em_transito"
	StatusCargoPresence    = "presenca_carga"
	StatusRegistered       = "di_registrada"
	StatusCleared          = "desembaracado"
	StatusDelivered        = "entregue"
)

var statusLabels = map[string]string{
	StatusAwaitingBoarding: "Aguardando embarque",
	StatusInTransit:        "Em trânsito",
	StatusCargoPresence:    "Presença de carga",
	StatusRegistered:       "DI registrada",
	StatusCleared:          "Desembaraçado",
	StatusDelivered:        "Entregue",
}

// StatusLabel traduz o código de status da ComexAPI para o rótulo exibido.
// Códigos desconhecidos são exibidos como chegaram.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}

	return status
}

// Container é um contêiner vinculado ao processo.
type Container struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

// Invoice é uma fatura comercial do processo.
type Invoice struct {
	Number   string  `json:"number"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// ProductLine é um item da mercadoria importada.
type ProductLine struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	NCM         string  `json:"ncm"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// OperationRecord é um processo de importação como chega da ComexAPI.
// Campos opcionais são ponteiros: a prévia de operações traz apenas um
// subconjunto e o renderizador degrada para "-" no que faltar.
type OperationRecord struct {
	Ref              string        `json:"ref"`
	Importer         *string       `json:"importer"`
	Exporter         *string       `json:"exporter"`
	Status           *string       `json:"status"`
	Channel          *string       `json:"channel"`
	URF              *string       `json:"urf"`
	Modal            *string       `json:"modal"`
	OriginCountry    *string       `json:"origin_country"`
	DINumber         *string       `json:"di_number"`
	BoardingDate     *string       `json:"boarding_date"`
	ArrivalDate      *string       `json:"arrival_date"`
	RegistrationDate *string       `json:"registration_date"`
	ClearanceDate    *string       `json:"clearance_date"`
	ExchangeRate     *float64      `json:"exchange_rate"`
	GrossWeight      *float64      `json:"gross_weight"`
	Containers       []Container   `json:"containers"`
	Invoices         []Invoice     `json:"invoices"`
	Products         []ProductLine `json:"products"`
}

// DerivedView concentra os valores derivados de um processo, calculados uma
// única vez por carga e reaproveitados por todas as colunas que precisarem.
type DerivedView struct {
	ContainersJoined string
	ProductsSummary  string
	InvoiceTotalBRL  float64
	HasInvoiceTotal  bool
	StatusLabel      string
}

// BuildDerivedView calcula os valores derivados de um registro.
func BuildDerivedView(record *OperationRecord) *DerivedView {
	derived := &DerivedView{}

	if record == nil {
		return derived
	}

	if len(record.Containers) > 0 {
		numbers := make([]string, 0, len(record.Containers))
		for _, container := range record.Containers {
			if container.Number != "" {
				numbers = append(numbers, container.Number)
			}
		}
		derived.ContainersJoined = strings.Join(numbers, ", ")
	}

	derived.ProductsSummary = summarizeProducts(record.Products)

	derived.InvoiceTotalBRL, derived.HasInvoiceTotal = sumInvoicesBRL(record)

	if record.Status != nil {
		derived.StatusLabel = StatusLabel(*record.Status)
	}

	return derived
}

// summarizeProducts resume as linhas de produto em um texto curto para a
// célula da tabela: a descrição do primeiro item e a contagem do restante.
func summarizeProducts(products []ProductLine) string {
	if len(products) == 0 {
		return ""
	}

	first := products[0].Description
	if first == "" {
		first = products[0].Code
	}

	if len(products) == 1 {
		return first
	}

	return fmt.Sprintf("%s (+%d itens)", first, len(products)-1)
}

// sumInvoicesBRL soma as faturas do processo em reais. Faturas em moeda
// estrangeira dependem da taxa de câmbio do registro; sem taxa, a fatura não
// entra na soma.
func sumInvoicesBRL(record *OperationRecord) (float64, bool) {
	var total float64
	converted := false

	for _, invoice := range record.Invoices {
		switch {
		case invoice.Currency == "" || strings.EqualFold(invoice.Currency, "BRL"):
			total += invoice.Amount
			converted = true
		case record.ExchangeRate != nil && *record.ExchangeRate > 0:
			total += invoice.Amount * *record.ExchangeRate
			converted = true
		}
	}

	return utils.RoundCurrency(total), converted
}
