package entity

import "deal_factory/internal/domain/value"

// Financials финансовые показатели объекта при фиксированных допущениях кредита.
type Financials struct {
	MonthlyGrossIncome  float64 `json:"monthlyGrossIncome"`
	AnnualGrossIncome   float64 `json:"annualGrossIncome"`
	OperatingExpenses   float64 `json:"operatingExpenses"`
	NOI                 float64 `json:"noi"`
	DownPayment         float64 `json:"downPayment"`
	LoanAmount          float64 `json:"loanAmount"`
	MonthlyMortgage     float64 `json:"monthlyMortgage"`
	AnnualDebtService   float64 `json:"annualDebtService"`
	AnnualCashFlow      float64 `json:"annualCashFlow"`
	MonthlyCashFlow     float64 `json:"monthlyCashFlow"`
	CapRate             float64 `json:"capRate"`          // %
	CashOnCashReturn    float64 `json:"cashOnCashReturn"` // %
	ROI                 float64 `json:"roi"`              // %, совпадает с CashOnCashReturn
	GrossRentMultiplier float64 `json:"grossRentMultiplier"`
}

// FinancialReport показатели вместе с рекомендацией для одного объекта.
type FinancialReport struct {
	Property       Property             `json:"property"`
	Financials     Financials           `json:"financials"`
	Recommendation value.Recommendation `json:"recommendation"`
}
