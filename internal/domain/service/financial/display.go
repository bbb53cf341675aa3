package financial

import (
	"github.com/shopspring/decimal"

	"deal_factory/internal/domain/entity"
)

const notAvailable = "n/a"

// Display показатели в формате для клиента: проценты с двумя знаками, деньги в целых.
type Display struct {
	MonthlyGrossIncome  int64  `json:"monthlyGrossIncome"`
	AnnualGrossIncome   int64  `json:"annualGrossIncome"`
	OperatingExpenses   int64  `json:"operatingExpenses"`
	NOI                 int64  `json:"noi"`
	MonthlyMortgage     int64  `json:"monthlyMortgage"`
	AnnualDebtService   int64  `json:"annualDebtService"`
	AnnualCashFlow      int64  `json:"annualCashFlow"`
	MonthlyCashFlow     int64  `json:"monthlyCashFlow"`
	CapRate             string `json:"capRate"`
	CashOnCashReturn    string `json:"cashOnCashReturn"`
	ROI                 string `json:"roi"`
	GrossRentMultiplier string `json:"grossRentMultiplier"`
	DownPaymentRequired int64  `json:"downPaymentRequired"`
}

func NewDisplay(f entity.Financials) Display {
	grm := notAvailable
	if f.AnnualGrossIncome > 0 {
		grm = decimal.NewFromFloat(f.GrossRentMultiplier).StringFixed(2)
	}

	return Display{
		MonthlyGrossIncome:  Currency(f.MonthlyGrossIncome),
		AnnualGrossIncome:   Currency(f.AnnualGrossIncome),
		OperatingExpenses:   Currency(f.OperatingExpenses),
		NOI:                 Currency(f.NOI),
		MonthlyMortgage:     Currency(f.MonthlyMortgage),
		AnnualDebtService:   Currency(f.AnnualDebtService),
		AnnualCashFlow:      Currency(f.AnnualCashFlow),
		MonthlyCashFlow:     Currency(f.MonthlyCashFlow),
		CapRate:             Percent(f.CapRate),
		CashOnCashReturn:    Percent(f.CashOnCashReturn),
		ROI:                 Percent(f.ROI),
		GrossRentMultiplier: grm,
		DownPaymentRequired: Currency(f.DownPayment),
	}
}

// Percent "6.55%".
func Percent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

// Currency округление до целой денежной единицы.
func Currency(v float64) int64 {
	return decimal.NewFromFloat(v).Round(0).IntPart()
}
