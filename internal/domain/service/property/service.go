package property

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/xid"
	"github.com/samber/lo"

	"deal_factory/internal/domain"
	"deal_factory/internal/domain/entity"
	"deal_factory/internal/domain/service/dealscore"
	"deal_factory/internal/domain/service/financial"
	"deal_factory/internal/domain/value"
	"deal_factory/pkg/errcodes"
	"deal_factory/pkg/logx"
)

const (
	topDealsLimit          = 5
	financialAnalysisLimit = 10
	briefingLimit          = 5
	strategyLimit          = 3
)

//go:generate moq -rm -out repository_mock.gen.go . Repository:RepositoryMock
type Repository interface {
	Ping(ctx context.Context) error
	CreateBatch(ctx context.Context, properties []entity.Property) error
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	List(ctx context.Context, filter entity.PropertyFilter) ([]entity.Property, error)
	Count(ctx context.Context) (int, error)
	SaveAnalyses(ctx context.Context, properties []entity.Property) error
}

type ListingSource interface {
	Listings(ctx context.Context) ([]entity.Property, error)
}

//go:generate moq -rm -out text_generator_mock.gen.go . TextGenerator:TextGeneratorMock
type TextGenerator interface {
	Configured() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	repo        Repository
	listings    ListingSource
	generator   TextGenerator
	now         func() time.Time
	assumptions financial.Assumptions
}

func NewService(
	repo Repository,
	listings ListingSource,
	generator TextGenerator,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		repo:        repo,
		listings:    listings,
		generator:   generator,
		now:         now,
		assumptions: financial.DefaultAssumptions(),
	}
}

// Ping проверка соединения с хранилищем для /test.
func (s *Service) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repo.Ping: %w", err)
	}
	return nil
}

// Scrape загружает объявления из источника и сохраняет их одной пачкой.
func (s *Service) Scrape(ctx context.Context) (int, error) {
	listings, err := s.listings.Listings(ctx)
	if err != nil {
		return 0, fmt.Errorf("listings.Listings: %w", err)
	}

	for i := range listings {
		if err := listings[i].Validate(); err != nil {
			return 0, fmt.Errorf("listing %d: %w", i, err)
		}
		listings[i].ID = xid.New().String()
		listings[i].Analysis = nil
		listings[i].AnalyzedAt = nil
	}

	if err := s.repo.CreateBatch(ctx, listings); err != nil {
		return 0, fmt.Errorf("repo.CreateBatch: %w", err)
	}

	scrapedTotal.Add(float64(len(listings)))
	logger(ctx).Info("listings scraped", "count", len(listings))

	return len(listings), nil
}

// AnalyzeAll пересчитывает скоринг всех объектов и сохраняет результат пачкой.
func (s *Service) AnalyzeAll(ctx context.Context) (entity.AnalysisResult, error) {
	properties, err := s.repo.List(ctx, entity.PropertyFilter{})
	if err != nil {
		return entity.AnalysisResult{}, fmt.Errorf("repo.List: %w", err)
	}

	if len(properties) == 0 {
		return entity.AnalysisResult{}, domain.WrapError(domain.ErrNoProperties, errcodes.NotFound,
			"No properties to analyze. Run /scrape first.")
	}

	analyzedAt := s.now().UTC()
	results := make([]entity.ScoredDeal, 0, len(properties))

	for i := range properties {
		score, err := dealscore.Calculate(properties[i])
		if err != nil {
			return entity.AnalysisResult{}, fmt.Errorf("dealscore.Calculate(%s): %w", properties[i].ID, err)
		}

		properties[i].Analysis = &score
		properties[i].AnalyzedAt = &analyzedAt

		results = append(results, entity.ScoredDeal{
			ID:        properties[i].ID,
			Address:   properties[i].Address,
			DealScore: score,
		})
	}

	if err := s.repo.SaveAnalyses(ctx, properties); err != nil {
		return entity.AnalysisResult{}, fmt.Errorf("repo.SaveAnalyses: %w", err)
	}

	slices.SortFunc(results, func(a, b entity.ScoredDeal) int {
		return cmp.Or(cmp.Compare(b.Score, a.Score), cmp.Compare(a.ID, b.ID))
	})

	analyzedTotal.Add(float64(len(results)))
	hotDeals := lo.CountBy(results, func(d entity.ScoredDeal) bool { return d.Verdict == value.VerdictHotDeal })
	hotDealsGauge.Set(float64(hotDeals))

	logger(ctx).Info("properties analyzed", logx.FieldCount, len(results), "hot-deals", hotDeals)

	return entity.AnalysisResult{
		Analyzed: len(results),
		TopDeals: results[:min(topDealsLimit, len(results))],
		All:      results,
	}, nil
}

// FinancialAnalysis показатели по лучшим объектам.
func (s *Service) FinancialAnalysis(ctx context.Context) ([]entity.FinancialReport, error) {
	properties, err := s.repo.List(ctx, entity.PropertyFilter{Limit: financialAnalysisLimit})
	if err != nil {
		return nil, fmt.Errorf("repo.List: %w", err)
	}

	if len(properties) == 0 {
		return nil, domain.WrapError(domain.ErrNoProperties, errcodes.NotFound,
			"No properties found. Run /scrape and /analyze first.")
	}

	reports := make([]entity.FinancialReport, 0, len(properties))
	for _, p := range properties {
		report, err := financial.Report(p, s.assumptions)
		if err != nil {
			return nil, fmt.Errorf("financial.Report(%s): %w", p.ID, err)
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// CalculateROI калькулятор для произвольной сделки, один юнит.
func (s *Service) CalculateROI(price, monthlyRent, downPayment float64) (entity.FinancialReport, error) {
	p := entity.Property{
		Price:       price,
		Units:       1,
		MonthlyRent: monthlyRent,
	}

	if err := p.Validate(); err != nil {
		return entity.FinancialReport{}, fmt.Errorf("property.Validate: %w", err)
	}

	report, err := financial.Report(p, s.assumptions.WithDownPayment(downPayment))
	if err != nil {
		return entity.FinancialReport{}, fmt.Errorf("financial.Report: %w", err)
	}

	return report, nil
}

func (s *Service) List(ctx context.Context, filter entity.PropertyFilter) ([]entity.Property, error) {
	if filter.Limit < 0 {
		return nil, domain.NewError(errcodes.InvalidPaging, "limit must not be negative")
	}

	properties, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("repo.List: %w", err)
	}

	return properties, nil
}

func (s *Service) Get(ctx context.Context, id string) (entity.Property, error) {
	if _, err := xid.FromString(id); err != nil {
		return entity.Property{}, domain.WrapError(err, errcodes.InvalidPropertyID, fmt.Sprintf("invalid property id %q", id))
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity.Property{}, fmt.Errorf("repo.GetByID: %w", err)
	}

	return *p, nil
}

// HotDeals объекты с баллом от порога горячей сделки.
func (s *Service) HotDeals(ctx context.Context) ([]entity.Property, error) {
	properties, err := s.repo.List(ctx, entity.PropertyFilter{MinScore: lo.ToPtr(value.HotDealMinScore())})
	if err != nil {
		return nil, fmt.Errorf("repo.List: %w", err)
	}

	return properties, nil
}

// Stats сводка для статуса в боте.
type Stats struct {
	Total    int
	HotDeals int
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("repo.Count: %w", err)
	}

	hot, err := s.HotDeals(ctx)
	if err != nil {
		return Stats{}, err
	}

	return Stats{Total: total, HotDeals: len(hot)}, nil
}
