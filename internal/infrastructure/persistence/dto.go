package persistence

import (
	"database/sql"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"deal_factory/internal/domain/entity"
	"deal_factory/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// propertySchema строка таблицы properties.
type propertySchema struct {
	ID              string          `db:"id"`
	Address         string          `db:"address"`
	ZipCode         string          `db:"zip_code"`
	Price           float64         `db:"price"`
	Units           int             `db:"units"`
	MonthlyRent     float64         `db:"monthly_rent"`
	DaysOnMarket    int             `db:"days_on_market"`
	OpportunityZone bool            `db:"opportunity_zone"`
	Images          []byte          `db:"images"`
	Description     string          `db:"description"`
	ScrapedAt       time.Time       `db:"scraped_at"`
	AIScore         sql.NullInt64   `db:"ai_score"`
	ScoreBreakdown  []byte          `db:"score_breakdown"`
	Verdict         sql.NullString  `db:"verdict"`
	MonthlyCashFlow sql.NullFloat64 `db:"monthly_cash_flow"`
	PricePerUnit    sql.NullFloat64 `db:"price_per_unit"`
	AnalyzedAt      sql.NullTime    `db:"analyzed_at"`
}

func fromProperty(p entity.Property) (propertySchema, error) {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	imagesBytes, err := json.Marshal(images)
	if err != nil {
		return propertySchema{}, fmt.Errorf("json.Marshal(images): %w", err)
	}

	s := propertySchema{
		ID:              p.ID,
		Address:         p.Address,
		ZipCode:         p.ZipCode,
		Price:           p.Price,
		Units:           p.Units,
		MonthlyRent:     p.MonthlyRent,
		DaysOnMarket:    p.DaysOnMarket,
		OpportunityZone: p.OpportunityZone,
		Images:          imagesBytes,
		Description:     p.Description,
		ScrapedAt:       p.ScrapedAt,
	}

	if p.Analysis != nil {
		breakdown, err := json.Marshal(p.Analysis.Breakdown)
		if err != nil {
			return propertySchema{}, fmt.Errorf("json.Marshal(breakdown): %w", err)
		}

		s.AIScore = sql.NullInt64{Int64: int64(p.Analysis.Score), Valid: true}
		s.ScoreBreakdown = breakdown
		s.Verdict = sql.NullString{String: p.Analysis.Verdict.String(), Valid: true}
		s.MonthlyCashFlow = sql.NullFloat64{Float64: p.Analysis.MonthlyCashFlow, Valid: true}
		s.PricePerUnit = sql.NullFloat64{Float64: p.Analysis.PricePerUnit, Valid: true}
	}

	if p.AnalyzedAt != nil {
		s.AnalyzedAt = sql.NullTime{Time: *p.AnalyzedAt, Valid: true}
	}

	return s, nil
}

func (s propertySchema) toDomain() (entity.Property, error) {
	p := entity.Property{
		ID:              s.ID,
		Address:         s.Address,
		ZipCode:         s.ZipCode,
		Price:           s.Price,
		Units:           s.Units,
		MonthlyRent:     s.MonthlyRent,
		DaysOnMarket:    s.DaysOnMarket,
		OpportunityZone: s.OpportunityZone,
		Description:     s.Description,
		ScrapedAt:       s.ScrapedAt,
	}

	if len(s.Images) > 0 {
		if err := json.Unmarshal(s.Images, &p.Images); err != nil {
			return entity.Property{}, fmt.Errorf("json.Unmarshal(images): %w", err)
		}
	}

	if s.AIScore.Valid {
		analysis := &entity.DealScore{
			Score:           int(s.AIScore.Int64),
			Verdict:         value.Verdict(s.Verdict.String),
			MonthlyCashFlow: s.MonthlyCashFlow.Float64,
			PricePerUnit:    s.PricePerUnit.Float64,
		}

		if len(s.ScoreBreakdown) > 0 {
			if err := json.Unmarshal(s.ScoreBreakdown, &analysis.Breakdown); err != nil {
				return entity.Property{}, fmt.Errorf("json.Unmarshal(breakdown): %w", err)
			}
		}

		p.Analysis = analysis
	}

	if s.AnalyzedAt.Valid {
		analyzedAt := s.AnalyzedAt.Time
		p.AnalyzedAt = &analyzedAt
	}

	return p, nil
}

// subscriberSchema строка таблицы subscribers.
type subscriberSchema struct {
	ID               string       `db:"id"`
	CustomerID       string       `db:"stripe_customer_id"`
	Status           string       `db:"status"`
	PlanID           string       `db:"plan_id"`
	CurrentPeriodEnd time.Time    `db:"current_period_end"`
	CreatedAt        time.Time    `db:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at"`
	CanceledAt       sql.NullTime `db:"canceled_at"`
}

func fromSubscriber(s entity.Subscriber) subscriberSchema {
	schema := subscriberSchema{
		ID:               s.ID,
		CustomerID:       s.CustomerID,
		Status:           s.Status.String(),
		PlanID:           s.PlanID,
		CurrentPeriodEnd: s.CurrentPeriodEnd,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}

	if s.CanceledAt != nil {
		schema.CanceledAt = sql.NullTime{Time: *s.CanceledAt, Valid: true}
	}

	return schema
}

func (s subscriberSchema) toDomain() (entity.Subscriber, error) {
	status, err := value.ParseSubscriptionStatus(s.Status)
	if err != nil {
		return entity.Subscriber{}, fmt.Errorf("value.ParseSubscriptionStatus: %w", err)
	}

	sub := entity.Subscriber{
		ID:               s.ID,
		CustomerID:       s.CustomerID,
		Status:           status,
		PlanID:           s.PlanID,
		CurrentPeriodEnd: s.CurrentPeriodEnd,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}

	if s.CanceledAt.Valid {
		canceledAt := s.CanceledAt.Time
		sub.CanceledAt = &canceledAt
	}

	return sub, nil
}
