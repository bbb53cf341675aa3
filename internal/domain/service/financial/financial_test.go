package financial_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"deal_factory/internal/domain"
	"deal_factory/internal/domain/entity"
	"deal_factory/internal/domain/service/financial"
	"deal_factory/internal/domain/value"
	"deal_factory/pkg/errcodes"
)

func TestAnalyze(t *testing.T) {
	rq := require.New(t)

	property := entity.Property{Price: 385_000, MonthlyRent: 4200, Units: 4}

	f, err := financial.Analyze(property, financial.DefaultAssumptions())
	rq.NoError(err)

	const (
		r = 0.06 / 12
		n = 360
	)

	growth := math.Pow(1+r, n)
	loan := 385_000 * 0.80
	mortgage := loan * r * growth / (growth - 1)
	noi := 4200*12 - 4200*12*0.5
	annualCashFlow := noi - mortgage*12

	rq.InDelta(50_400, f.AnnualGrossIncome, 0.01)
	rq.InDelta(25_200, f.OperatingExpenses, 0.01)
	rq.InDelta(noi, f.NOI, 0.01)
	rq.InDelta(77_000, f.DownPayment, 0.01)
	rq.InDelta(loan, f.LoanAmount, 0.01)
	rq.InDelta(mortgage, f.MonthlyMortgage, 0.01)
	rq.InDelta(1846.62, f.MonthlyMortgage, 0.01)
	rq.InDelta(mortgage*12, f.AnnualDebtService, 0.01)
	rq.InDelta(annualCashFlow, f.AnnualCashFlow, 0.01)
	rq.InDelta(annualCashFlow/12, f.MonthlyCashFlow, 0.01)
	rq.InDelta(noi/385_000*100, f.CapRate, 0.01)
	rq.InDelta(annualCashFlow/77_000*100, f.CashOnCashReturn, 0.01)
	rq.Equal(f.CashOnCashReturn, f.ROI)
	rq.InDelta(385_000.0/50_400, f.GrossRentMultiplier, 0.01)

	rq.Equal(value.RecommendationBelowTarget, financial.Recommend(f.CapRate, f.CashOnCashReturn))
}

func TestAnalyzeDisplay(t *testing.T) {
	rq := require.New(t)

	f, err := financial.Analyze(entity.Property{Price: 385_000, MonthlyRent: 4200}, financial.DefaultAssumptions())
	rq.NoError(err)

	d := financial.NewDisplay(f)

	rq.Equal(financial.Display{
		MonthlyGrossIncome:  4200,
		AnnualGrossIncome:   50_400,
		OperatingExpenses:   25_200,
		NOI:                 25_200,
		MonthlyMortgage:     1847,
		AnnualDebtService:   22_159,
		AnnualCashFlow:      3041,
		MonthlyCashFlow:     253,
		CapRate:             "6.55%",
		CashOnCashReturn:    "3.95%",
		ROI:                 "3.95%",
		GrossRentMultiplier: "7.64",
		DownPaymentRequired: 77_000,
	}, d)
}

func TestAnalyzeZeroRent(t *testing.T) {
	rq := require.New(t)

	f, err := financial.Analyze(entity.Property{Price: 250_000, Units: 2}, financial.DefaultAssumptions())
	rq.NoError(err)

	rq.Zero(f.AnnualGrossIncome)
	rq.Zero(f.NOI)
	rq.Zero(f.CapRate)
	rq.Zero(f.GrossRentMultiplier)
	rq.Less(f.CashOnCashReturn, 0.0)

	for _, v := range []float64{f.CapRate, f.CashOnCashReturn, f.GrossRentMultiplier, f.MonthlyCashFlow} {
		rq.False(math.IsNaN(v))
		rq.False(math.IsInf(v, 0))
	}

	rq.Equal("n/a", financial.NewDisplay(f).GrossRentMultiplier)
}

func TestAnalyzeRejectsInvalidInput(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		property    entity.Property
		assumptions financial.Assumptions
		code        string
	}{
		{
			name:        "Zero price",
			property:    entity.Property{MonthlyRent: 1000},
			assumptions: financial.DefaultAssumptions(),
			code:        errcodes.InvalidProperty.String(),
		},
		{
			name:        "Negative rent",
			property:    entity.Property{Price: 100_000, MonthlyRent: -1},
			assumptions: financial.DefaultAssumptions(),
			code:        errcodes.InvalidProperty.String(),
		},
		{
			name:        "Zero down payment",
			property:    entity.Property{Price: 100_000, MonthlyRent: 1000},
			assumptions: financial.DefaultAssumptions().WithDownPayment(0),
			code:        errcodes.InvalidFinancialInput.String(),
		},
		{
			name:        "Down payment above price",
			property:    entity.Property{Price: 100_000, MonthlyRent: 1000},
			assumptions: financial.DefaultAssumptions().WithDownPayment(1.5),
			code:        errcodes.InvalidFinancialInput.String(),
		},
		{
			name:        "NaN price",
			property:    entity.Property{Price: math.NaN(), MonthlyRent: 1000},
			assumptions: financial.DefaultAssumptions(),
			code:        errcodes.InvalidProperty.String(),
		},
		{
			name:        "Infinite rent",
			property:    entity.Property{Price: 100_000, MonthlyRent: math.Inf(1)},
			assumptions: financial.DefaultAssumptions(),
			code:        errcodes.InvalidProperty.String(),
		},
		{
			name:        "NaN down payment",
			property:    entity.Property{Price: 100_000, MonthlyRent: 1000},
			assumptions: financial.DefaultAssumptions().WithDownPayment(math.NaN()),
			code:        errcodes.InvalidFinancialInput.String(),
		},
		{
			name:        "Overflowing income",
			property:    entity.Property{Price: 1e308, MonthlyRent: 1e308},
			assumptions: financial.DefaultAssumptions(),
			code:        errcodes.InvalidFinancialInput.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			_, err := financial.Analyze(tc.property, tc.assumptions)
			rq.Error(err)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.code, code.String())
		})
	}

	_, err := financial.Analyze(entity.Property{MonthlyRent: 1000}, financial.DefaultAssumptions())
	rq.ErrorIs(err, domain.ErrInvalidProperty)
}

func TestAnalyzeDownPayment(t *testing.T) {
	rq := require.New(t)

	property := entity.Property{Price: 400_000, MonthlyRent: 4000}

	f, err := financial.Analyze(property, financial.DefaultAssumptions().WithDownPayment(0.25))
	rq.NoError(err)
	rq.InDelta(100_000, f.DownPayment, 0.01)
	rq.InDelta(300_000, f.LoanAmount, 0.01)

	allCash, err := financial.Analyze(property, financial.DefaultAssumptions().WithDownPayment(1))
	rq.NoError(err)
	rq.Zero(allCash.MonthlyMortgage)
	rq.InDelta(allCash.NOI, allCash.AnnualCashFlow, 0.01)
	rq.InDelta(allCash.CapRate, allCash.CashOnCashReturn, 0.01)
}

func TestAnalyzeIdempotent(t *testing.T) {
	rq := require.New(t)

	property := entity.Property{Price: 340_000, MonthlyRent: 4000, Units: 4}

	first, err := financial.Analyze(property, financial.DefaultAssumptions())
	rq.NoError(err)

	second, err := financial.Analyze(property, financial.DefaultAssumptions())
	rq.NoError(err)

	rq.Equal(first, second)
	rq.Equal(financial.NewDisplay(first), financial.NewDisplay(second))
}

func TestMonthlyPayment(t *testing.T) {
	rq := require.New(t)

	rq.InDelta(599.55, financial.MonthlyPayment(100_000, 0.06, 360), 0.01)
	rq.InDelta(1000, financial.MonthlyPayment(360_000, 0, 360), 0.0001)
	rq.Zero(financial.MonthlyPayment(0, 0.06, 360))
	rq.Zero(financial.MonthlyPayment(100_000, 0.06, 0))
}

func TestRecommend(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		capRate    float64
		cashOnCash float64
		expected   value.Recommendation
	}{
		{capRate: 10, cashOnCash: 12, expected: value.RecommendationExcellent},
		{capRate: 15, cashOnCash: 30, expected: value.RecommendationExcellent},
		{capRate: 9.99, cashOnCash: 12, expected: value.RecommendationGood},
		{capRate: 10, cashOnCash: 11.99, expected: value.RecommendationGood},
		{capRate: 8, cashOnCash: 10, expected: value.RecommendationGood},
		{capRate: 7.99, cashOnCash: 10, expected: value.RecommendationAcceptable},
		{capRate: 8, cashOnCash: 9.99, expected: value.RecommendationAcceptable},
		{capRate: 6, cashOnCash: 8, expected: value.RecommendationAcceptable},
		{capRate: 5.99, cashOnCash: 20, expected: value.RecommendationBelowTarget},
		{capRate: 6, cashOnCash: 7.99, expected: value.RecommendationBelowTarget},
		{capRate: -3, cashOnCash: -10, expected: value.RecommendationBelowTarget},
		// сравнение идёт по отображаемым значениям
		{capRate: 9.995, cashOnCash: 12, expected: value.RecommendationExcellent},
		{capRate: 9.994, cashOnCash: 12, expected: value.RecommendationGood},
	}

	for _, tc := range testCases {
		rq.Equal(tc.expected, financial.Recommend(tc.capRate, tc.cashOnCash),
			"cap rate %v, cash on cash %v", tc.capRate, tc.cashOnCash)
	}
}

func TestPercent(t *testing.T) {
	rq := require.New(t)

	rq.Equal("6.55%", financial.Percent(6.545454))
	rq.Equal("10.00%", financial.Percent(9.995))
	rq.Equal("-3.10%", financial.Percent(-3.1))
	rq.Equal("0.00%", financial.Percent(0))
}
