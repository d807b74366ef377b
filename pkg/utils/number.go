package utils

import "math"

// RoundCurrency arredonda um valor monetário para duas casas decimais,
// removendo resíduos de ponto flutuante deixados pela conversão de câmbio.
func RoundCurrency(value float64) float64 {
	return math.Round(value*100) / 100
}
