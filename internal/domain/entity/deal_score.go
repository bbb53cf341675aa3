package entity

import "deal_factory/internal/domain/value"

// ScoreBreakdown вклад каждого фактора в итоговый балл.
type ScoreBreakdown struct {
	Base         int `json:"base"`
	Motivation   int `json:"motivation"`
	CashFlow     int `json:"cashFlow"`
	PricePerUnit int `json:"pricePerUnit"`
	Special      int `json:"special"`
}

// Total сумма компонентов до ограничения диапазоном 0..100.
func (b ScoreBreakdown) Total() int {
	return b.Base + b.Motivation + b.CashFlow + b.PricePerUnit + b.Special
}

// DealScore результат скоринга объекта.
type DealScore struct {
	Score           int            `json:"score"` // 0 - 100
	Breakdown       ScoreBreakdown `json:"breakdown"`
	Verdict         value.Verdict  `json:"verdict"`
	MonthlyCashFlow float64        `json:"monthlyCashFlow"`
	PricePerUnit    float64        `json:"pricePerUnit"`
}
