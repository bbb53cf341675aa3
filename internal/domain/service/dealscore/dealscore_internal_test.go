package dealscore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCashFlowBonus(t *testing.T) {
	rq := require.New(t)

	for cashFlow, bonus := range map[float64]int{
		5000:    20,
		1000:    20,
		999.99:  10,
		500:     10,
		499.99:  0,
		0:       0,
		-0.01:   -20,
		-2500.0: -20,
	} {
		rq.Equal(bonus, cashFlowBonus(cashFlow), "cash flow %v", cashFlow)
	}
}

func TestPricePerUnitBonus(t *testing.T) {
	rq := require.New(t)

	for pricePerUnit, bonus := range map[float64]int{
		50_000:    15,
		99_999.99: 15,
		100_000:   10,
		119_999:   10,
		120_000:   0,
		500_000:   0,
	} {
		rq.Equal(bonus, pricePerUnitBonus(pricePerUnit), "price per unit %v", pricePerUnit)
	}
}

func TestClamp(t *testing.T) {
	rq := require.New(t)

	rq.Equal(0, clamp(-15))
	rq.Equal(0, clamp(0))
	rq.Equal(42, clamp(42))
	rq.Equal(100, clamp(100))
	rq.Equal(100, clamp(135))
}
