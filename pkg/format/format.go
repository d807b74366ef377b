package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Pesos acima desse limite chegam da API de origem multiplicados por 100.
const weightScaleThreshold = 100000

const dateLayoutBR = "02/01/2006"

// NormalizeWeight corrige pesos recebidos em centésimos de quilo.
func NormalizeWeight(value float64) float64 {
	if value > weightScaleThreshold {
		return value / 100
	}

	return value
}

// Decimal formata um número com separadores pt-BR (milhar "." e decimal ",").
func Decimal(value float64, places int) string {
	s := strconv.FormatFloat(value, 'f', places, 64)

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}

	out := b.String()
	if fracPart != "" {
		out += "," + fracPart
	}

	if negative {
		out = "-" + out
	}

	return out
}

// Int formata um inteiro com separador de milhar pt-BR.
func Int(value int) string {
	return Decimal(float64(value), 0)
}

// Currency formata um valor em reais (R$ 1.234,56).
func Currency(value float64) string {
	return "R$ " + Decimal(value, 2)
}

// CompactCurrency abrevia valores grandes para os cards e gráficos.
// A partir de um milhão o valor é arredondado para o milhão mais próximo.
func CompactCurrency(value float64) string {
	abs := math.Abs(value)

	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("R$ %.0f m", math.Round(value/1_000_000))
	case abs >= 1_000:
		return fmt.Sprintf("R$ %.0f k", math.Round(value/1_000))
	default:
		return Currency(value)
	}
}

// Weight formata um peso em quilos, omitindo casas decimais zeradas.
func Weight(value float64) string {
	normalized := NormalizeWeight(value)

	if normalized == math.Trunc(normalized) {
		return Decimal(normalized, 0)
	}

	return Decimal(normalized, 2)
}

// Date formata uma data no padrão brasileiro (DD/MM/AAAA).
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(dateLayoutBR)
}

// DateFromAPI converte uma data ISO (AAAA-MM-DD, com ou sem horário) para o
// padrão brasileiro. Datas vazias ou inválidas retornam string vazia.
func DateFromAPI(raw string) string {
	if raw == "" {
		return ""
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return ""
		}
	}

	return t.Format(dateLayoutBR)
}

// MonthFromAPI converte uma competência (AAAA-MM) para o rótulo MM/AAAA
// usado nos eixos dos gráficos mensais.
func MonthFromAPI(raw string) string {
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return raw
	}

	return t.Format("01/2006")
}
