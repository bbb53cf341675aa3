package entity

import (
	"fmt"
	"math"
	"time"

	"deal_factory/internal/domain"
	"deal_factory/pkg/errcodes"
)

// Property объект недвижимости из фида объявлений.
type Property struct {
	ID              string    `json:"id"`
	Address         string    `json:"address"`
	ZipCode         string    `json:"zipCode"`
	Price           float64   `json:"price"`
	Units           int       `json:"units"`
	MonthlyRent     float64   `json:"monthlyRent"` // суммарная аренда по всем юнитам
	DaysOnMarket    int       `json:"daysOnMarket"`
	OpportunityZone bool      `json:"opportunityZone"`
	Images          []string  `json:"images"`
	Description     string    `json:"description"`
	ScrapedAt       time.Time `json:"scraped"`

	// Заполняется скорингом, nil пока объект не проанализирован
	Analysis   *DealScore `json:"analysis,omitempty"`
	AnalyzedAt *time.Time `json:"analyzedAt,omitempty"`
}

func (p Property) Analyzed() bool {
	return p.Analysis != nil
}

// Score возвращает балл скоринга или 0 для непроанализированного объекта.
func (p Property) Score() int {
	if p.Analysis == nil {
		return 0
	}
	return p.Analysis.Score
}

// Validate проверяет числовые поля на границе системы.
func (p Property) Validate() error {
	switch {
	case !finite(p.Price) || !finite(p.MonthlyRent):
		return invalidProperty("price and monthly rent must be finite, got %v and %v", p.Price, p.MonthlyRent)
	case p.Price <= 0:
		return invalidProperty("price must be positive, got %v", p.Price)
	case p.Units <= 0:
		return invalidProperty("units must be positive, got %d", p.Units)
	case p.MonthlyRent < 0:
		return invalidProperty("monthly rent must not be negative, got %v", p.MonthlyRent)
	case p.DaysOnMarket < 0:
		return invalidProperty("days on market must not be negative, got %d", p.DaysOnMarket)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func invalidProperty(format string, args ...any) error {
	return domain.WrapError(domain.ErrInvalidProperty, errcodes.InvalidProperty, fmt.Sprintf(format, args...))
}

// PropertyFilter выборка по минимальному баллу, сортировка по баллу по убыванию.
type PropertyFilter struct {
	MinScore *int // nil - без фильтра, включая непроанализированные
	Limit    int  // 0 - без ограничения
}
