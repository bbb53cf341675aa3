package dealscore

import (
	"deal_factory/internal/domain/entity"
	"deal_factory/internal/domain/value"
)

const (
	baseScore = 50
	minScore  = 0
	maxScore  = 100

	// Допущения для быстрой оценки денежного потока
	expenseRatio     = 0.50 // правило 50%
	loanToValue      = 0.80 // 20% первоначальный взнос
	flatInterestRate = 0.06 // годовая ставка без амортизации

	// Бонусная зона (Temple)
	bonusZipCode = "19122"
)

// Calculate оценивает сделку: база 50, сумма бонусов, затем ограничение 0..100.
func Calculate(p entity.Property) (entity.DealScore, error) {
	if err := p.Validate(); err != nil {
		return entity.DealScore{}, err
	}

	cashFlow := MonthlyCashFlow(p)
	pricePerUnit := p.Price / float64(p.Units)

	breakdown := entity.ScoreBreakdown{
		Base:         baseScore,
		Motivation:   motivationBonus(p.DaysOnMarket),
		CashFlow:     cashFlowBonus(cashFlow),
		PricePerUnit: pricePerUnitBonus(pricePerUnit),
		Special:      specialBonus(p),
	}

	score := clamp(breakdown.Total())

	return entity.DealScore{
		Score:           score,
		Breakdown:       breakdown,
		Verdict:         value.VerdictFromScore(score),
		MonthlyCashFlow: cashFlow,
		PricePerUnit:    pricePerUnit,
	}, nil
}

// MonthlyCashFlow аренда минус 50% расходов минус ипотека по плоской ставке.
// Это приближение, точный аннуитет считает пакет financial.
func MonthlyCashFlow(p entity.Property) float64 {
	expenses := p.MonthlyRent * expenseRatio
	mortgage := p.Price * loanToValue * flatInterestRate / 12

	return p.MonthlyRent - expenses - mortgage
}

// Срабатывает только старший подходящий уровень.
func motivationBonus(daysOnMarket int) int {
	switch {
	case daysOnMarket >= 180:
		return 25
	case daysOnMarket >= 90:
		return 20
	case daysOnMarket >= 60:
		return 15
	case daysOnMarket >= 30:
		return 10
	default:
		return 0
	}
}

func cashFlowBonus(monthlyCashFlow float64) int {
	switch {
	case monthlyCashFlow >= 1000:
		return 20
	case monthlyCashFlow >= 500:
		return 10
	case monthlyCashFlow < 0:
		return -20
	default:
		return 0
	}
}

func pricePerUnitBonus(pricePerUnit float64) int {
	switch {
	case pricePerUnit < 100_000:
		return 15
	case pricePerUnit < 120_000:
		return 10
	default:
		return 0
	}
}

// Специальные факторы складываются независимо.
func specialBonus(p entity.Property) int {
	bonus := 0

	if p.OpportunityZone {
		bonus += 20
	}

	if p.ZipCode == bonusZipCode {
		bonus += 10
	}

	if p.Units >= 5 {
		bonus += 10
	} else if p.Units >= 3 {
		bonus += 5
	}

	return bonus
}

func clamp(score int) int {
	return max(minScore, min(maxScore, score))
}
