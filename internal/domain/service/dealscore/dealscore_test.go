package dealscore_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"deal_factory/internal/domain"
	"deal_factory/internal/domain/entity"
	"deal_factory/internal/domain/service/dealscore"
	"deal_factory/internal/domain/value"
	"deal_factory/pkg/tests"
)

func TestCalculate(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name      string
		property  entity.Property
		breakdown entity.ScoreBreakdown
		score     int
		verdict   value.Verdict
		cashFlow  float64
		perUnit   float64
	}{
		{
			name: "Long listing, five units, clamped to 100",
			property: entity.Property{
				ZipCode: "19121", Price: 460_000, Units: 5, MonthlyRent: 5500, DaysOnMarket: 200,
			},
			breakdown: entity.ScoreBreakdown{Base: 50, Motivation: 25, CashFlow: 10, PricePerUnit: 15, Special: 10},
			score:     100,
			verdict:   value.VerdictHotDeal,
			cashFlow:  910,
			perUnit:   92_000,
		},
		{
			name: "Opportunity zone in bonus zip",
			property: entity.Property{
				ZipCode: "19122", Price: 385_000, Units: 4, MonthlyRent: 4200, DaysOnMarket: 210, OpportunityZone: true,
			},
			breakdown: entity.ScoreBreakdown{Base: 50, Motivation: 25, CashFlow: 10, PricePerUnit: 15, Special: 35},
			score:     100,
			verdict:   value.VerdictHotDeal,
			cashFlow:  560,
			perUnit:   96_250,
		},
		{
			name: "Center city triplex",
			property: entity.Property{
				ZipCode: "19102", Price: 850_000, Units: 3, MonthlyRent: 7500, DaysOnMarket: 15,
			},
			breakdown: entity.ScoreBreakdown{Base: 50, Special: 5},
			score:     55,
			verdict:   value.VerdictNeedsReview,
			cashFlow:  350,
			perUnit:   850_000.0 / 3,
		},
		{
			name: "Six units in Frankford",
			property: entity.Property{
				ZipCode: "19124", Price: 295_000, Units: 6, MonthlyRent: 4800, DaysOnMarket: 120,
			},
			breakdown: entity.ScoreBreakdown{Base: 50, Motivation: 20, CashFlow: 20, PricePerUnit: 15, Special: 10},
			score:     100,
			verdict:   value.VerdictHotDeal,
			cashFlow:  1220,
			perUnit:   295_000.0 / 6,
		},
		{
			name: "Negative cash flow",
			property: entity.Property{
				ZipCode: "10001", Price: 1_000_000, Units: 1, MonthlyRent: 1000,
			},
			breakdown: entity.ScoreBreakdown{Base: 50, CashFlow: -20},
			score:     30,
			verdict:   value.VerdictPass,
			cashFlow:  -3500,
			perUnit:   1_000_000,
		},
		{
			name: "Duplex between price tiers",
			property: entity.Property{
				ZipCode: "19140", Price: 220_000, Units: 2, MonthlyRent: 1800, DaysOnMarket: 65,
			},
			breakdown: entity.ScoreBreakdown{Base: 50, Motivation: 15, PricePerUnit: 10},
			score:     75,
			verdict:   value.VerdictGood,
			cashFlow:  flatRateCashFlow(1800, 220_000),
			perUnit:   110_000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			result, err := dealscore.Calculate(tc.property)
			rq.NoError(err)

			rq.Equal(tc.breakdown, result.Breakdown)
			rq.Equal(tc.score, result.Score)
			rq.Equal(tc.verdict, result.Verdict)
			rq.InDelta(tc.cashFlow, result.MonthlyCashFlow, 0.01)
			rq.InDelta(tc.perUnit, result.PricePerUnit, 0.01)
		})
	}
}

func TestCalculateMotivationTiers(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		daysOnMarket int
		motivation   int
	}{
		{daysOnMarket: 0, motivation: 0},
		{daysOnMarket: 29, motivation: 0},
		{daysOnMarket: 30, motivation: 10},
		{daysOnMarket: 59, motivation: 10},
		{daysOnMarket: 60, motivation: 15},
		{daysOnMarket: 89, motivation: 15},
		{daysOnMarket: 90, motivation: 20},
		{daysOnMarket: 179, motivation: 20},
		{daysOnMarket: 180, motivation: 25},
		{daysOnMarket: 1000, motivation: 25},
	}

	for _, tc := range testCases {
		result, err := dealscore.Calculate(entity.Property{
			Price: 300_000, Units: 2, MonthlyRent: 2000, DaysOnMarket: tc.daysOnMarket,
		})
		rq.NoError(err)
		rq.Equal(tc.motivation, result.Breakdown.Motivation, "days on market %d", tc.daysOnMarket)
	}
}

func TestCalculateUnitsBonus(t *testing.T) {
	rq := require.New(t)

	for units, special := range map[int]int{1: 0, 2: 0, 3: 5, 4: 5, 5: 10, 12: 10} {
		result, err := dealscore.Calculate(entity.Property{
			Price: 1_200_000, Units: units, MonthlyRent: 9000,
		})
		rq.NoError(err)
		rq.Equal(special, result.Breakdown.Special, "units %d", units)
	}
}

func TestCalculateRejectsInvalidProperty(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		property entity.Property
	}{
		{name: "Zero units", property: entity.Property{Price: 300_000, MonthlyRent: 2000}},
		{name: "Negative units", property: entity.Property{Price: 300_000, Units: -1, MonthlyRent: 2000}},
		{name: "Zero price", property: entity.Property{Units: 2, MonthlyRent: 2000}},
		{name: "Negative rent", property: entity.Property{Price: 300_000, Units: 2, MonthlyRent: -1}},
		{name: "Negative days on market", property: entity.Property{Price: 300_000, Units: 2, DaysOnMarket: -5}},
		{name: "NaN price", property: entity.Property{Price: math.NaN(), Units: 2, MonthlyRent: 2000}},
		{name: "Infinite rent", property: entity.Property{Price: 300_000, Units: 2, MonthlyRent: math.Inf(1)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			_, err := dealscore.Calculate(tc.property)
			rq.ErrorIs(err, domain.ErrInvalidProperty)
		})
	}
}

func TestCalculateZeroRent(t *testing.T) {
	rq := require.New(t)

	result, err := dealscore.Calculate(entity.Property{Price: 200_000, Units: 2})
	rq.NoError(err)

	rq.InDelta(-800, result.MonthlyCashFlow, 0.01)
	rq.Equal(-20, result.Breakdown.CashFlow)
}

func TestCalculateRandomized(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer()

	for range 1000 {
		property := entity.Property{
			ZipCode:         []string{"19121", "19122", "19124"}[random.Intn(3)],
			Price:           1 + random.Float64()*2_000_000,
			Units:           1 + random.Intn(20),
			MonthlyRent:     random.Float64() * 20_000,
			DaysOnMarket:    random.Intn(400),
			OpportunityZone: random.Bool(),
		}

		first, err := dealscore.Calculate(property)
		rq.NoError(err)

		second, err := dealscore.Calculate(property)
		rq.NoError(err)

		rq.Equal(first, second)
		rq.GreaterOrEqual(first.Score, 0)
		rq.LessOrEqual(first.Score, 100)
		rq.Equal(value.VerdictFromScore(first.Score), first.Verdict)
	}
}

func flatRateCashFlow(rent, price float64) float64 {
	return rent - rent*0.5 - price*0.8*0.06/12
}
