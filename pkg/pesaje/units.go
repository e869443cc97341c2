package pesaje

import (
	"galeana-pepper/domain"

	"github.com/shopspring/decimal"
)

// ResolverPeso returns a scale reading in kilograms and pounds, rounded to two
// decimals. A side sent as zero is derived from the other.
func ResolverPeso(kg, lb float64) (decimal.Decimal, decimal.Decimal, error) {
	if kg < 0 || lb < 0 || (kg == 0 && lb == 0) {
		return decimal.Zero, decimal.Zero, domain.ErrPesoInvalido
	}

	k := decimal.NewFromFloat(kg)
	l := decimal.NewFromFloat(lb)
	switch {
	case kg > 0 && lb > 0:
	case kg > 0:
		l = KgToLb(k)
	default:
		k = LbToKg(l)
	}
	return k.Round(2), l.Round(2), nil
}

func KgToLb(kg decimal.Decimal) decimal.Decimal {
	return kg.Mul(domain.LibrasPorKilo).Round(2)
}

func LbToKg(lb decimal.Decimal) decimal.Decimal {
	return lb.DivRound(domain.LibrasPorKilo, 2)
}
