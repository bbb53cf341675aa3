package financial

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"deal_factory/internal/domain"
	"deal_factory/internal/domain/entity"
	"deal_factory/internal/domain/value"
	"deal_factory/pkg/errcodes"
)

// Assumptions параметры финансирования и расходов.
type Assumptions struct {
	ExpenseRatio     float64 // доля операционных расходов от валового дохода
	DownPaymentRatio float64 // доля первоначального взноса от цены
	AnnualRate       float64 // номинальная годовая ставка
	TermMonths       int     // срок кредита в месяцах
}

// DefaultAssumptions 50% расходов, 20% взнос, 6% годовых, 30 лет.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		ExpenseRatio:     0.50,
		DownPaymentRatio: 0.20,
		AnnualRate:       0.06,
		TermMonths:       360,
	}
}

// WithDownPayment копия допущений с другим первоначальным взносом.
func (a Assumptions) WithDownPayment(ratio float64) Assumptions {
	a.DownPaymentRatio = ratio
	return a
}

func (a Assumptions) Validate() error {
	switch {
	case !finite(a.DownPaymentRatio, a.ExpenseRatio, a.AnnualRate):
		return invalidInput("assumptions must be finite, got %+v", a)
	case a.DownPaymentRatio <= 0 || a.DownPaymentRatio > 1:
		return invalidInput("down payment ratio must be in (0, 1], got %v", a.DownPaymentRatio)
	case a.ExpenseRatio < 0 || a.ExpenseRatio > 1:
		return invalidInput("expense ratio must be in [0, 1], got %v", a.ExpenseRatio)
	case a.AnnualRate < 0:
		return invalidInput("annual rate must not be negative, got %v", a.AnnualRate)
	case a.TermMonths <= 0:
		return invalidInput("term must be positive, got %d months", a.TermMonths)
	}
	return nil
}

// Analyze считает NOI, аннуитетный платёж, денежный поток и доходности.
// Юниты не участвуют в расчёте, поэтому проверяются только цена и аренда.
func Analyze(p entity.Property, a Assumptions) (entity.Financials, error) {
	if err := a.Validate(); err != nil {
		return entity.Financials{}, err
	}

	switch {
	case !finite(p.Price, p.MonthlyRent):
		return entity.Financials{}, invalidProperty("price and monthly rent must be finite, got %v and %v",
			p.Price, p.MonthlyRent)
	case p.Price <= 0:
		return entity.Financials{}, invalidProperty("price must be positive, got %v", p.Price)
	case p.MonthlyRent < 0:
		return entity.Financials{}, invalidProperty("monthly rent must not be negative, got %v", p.MonthlyRent)
	}

	annualGrossIncome := p.MonthlyRent * 12
	operatingExpenses := annualGrossIncome * a.ExpenseRatio
	noi := annualGrossIncome - operatingExpenses

	downPayment := p.Price * a.DownPaymentRatio
	loanAmount := p.Price - downPayment
	monthlyMortgage := MonthlyPayment(loanAmount, a.AnnualRate, a.TermMonths)

	annualDebtService := monthlyMortgage * 12
	annualCashFlow := noi - annualDebtService
	cashOnCash := annualCashFlow / downPayment * 100

	var grm float64
	if annualGrossIncome > 0 {
		grm = p.Price / annualGrossIncome
	}

	f := entity.Financials{
		MonthlyGrossIncome:  p.MonthlyRent,
		AnnualGrossIncome:   annualGrossIncome,
		OperatingExpenses:   operatingExpenses,
		NOI:                 noi,
		DownPayment:         downPayment,
		LoanAmount:          loanAmount,
		MonthlyMortgage:     monthlyMortgage,
		AnnualDebtService:   annualDebtService,
		AnnualCashFlow:      annualCashFlow,
		MonthlyCashFlow:     annualCashFlow / 12,
		CapRate:             noi / p.Price * 100,
		CashOnCashReturn:    cashOnCash,
		ROI:                 cashOnCash,
		GrossRentMultiplier: grm,
	}

	// Конечные входы всё ещё могут переполниться, например 1e308 * 12.
	if !finite(f.AnnualGrossIncome, f.OperatingExpenses, f.NOI, f.DownPayment, f.LoanAmount,
		f.MonthlyMortgage, f.AnnualDebtService, f.AnnualCashFlow, f.CapRate, f.CashOnCashReturn,
		f.GrossRentMultiplier) {
		return entity.Financials{}, invalidInput("price %v and monthly rent %v are out of range", p.Price, p.MonthlyRent)
	}

	return f, nil
}

// MonthlyPayment стандартный аннуитет: L * r(1+r)^n / ((1+r)^n - 1).
// При нулевой ставке тело кредита делится поровну.
func MonthlyPayment(loanAmount, annualRate float64, termMonths int) float64 {
	if loanAmount <= 0 || termMonths <= 0 {
		return 0
	}

	r := annualRate / 12
	if r == 0 {
		return loanAmount / float64(termMonths)
	}

	growth := math.Pow(1+r, float64(termMonths))

	return loanAmount * r * growth / (growth - 1)
}

// Recommend сравнивает показатели, округлённые до сотых, как они отображаются.
func Recommend(capRate, cashOnCash float64) value.Recommendation {
	capRate = round2(capRate)
	cashOnCash = round2(cashOnCash)

	switch {
	case capRate >= 10 && cashOnCash >= 12:
		return value.RecommendationExcellent
	case capRate >= 8 && cashOnCash >= 10:
		return value.RecommendationGood
	case capRate >= 6 && cashOnCash >= 8:
		return value.RecommendationAcceptable
	default:
		return value.RecommendationBelowTarget
	}
}

// Report анализ и рекомендация одним вызовом.
func Report(p entity.Property, a Assumptions) (entity.FinancialReport, error) {
	f, err := Analyze(p, a)
	if err != nil {
		return entity.FinancialReport{}, err
	}

	return entity.FinancialReport{
		Property:       p,
		Financials:     f,
		Recommendation: Recommend(f.CapRate, f.CashOnCashReturn),
	}, nil
}

// Округление как в Display, иначе 9.995 отобразится "10.00%", но не пройдёт порог.
func round2(v float64) float64 {
	if !finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func invalidProperty(format string, args ...any) error {
	return domain.WrapError(domain.ErrInvalidProperty, errcodes.InvalidProperty, fmt.Sprintf(format, args...))
}

func invalidInput(format string, args ...any) error {
	return domain.NewError(errcodes.InvalidFinancialInput, fmt.Sprintf(format, args...))
}
