package property

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"deal_factory/internal/domain"
	"deal_factory/internal/domain/entity"
	"deal_factory/internal/domain/service/financial"
	"deal_factory/pkg/errcodes"
)

const strategyIntro = `You are a Pace Morby-trained real estate investor specializing in creative finance strategies (Subject-To, Seller Financing, Lease Options).

Analyze these top %d deals and provide specific action plans:
`

const strategyOutro = `
For each deal, provide:
1. **Best Creative Finance Strategy** (Subject-To, Seller Finance, or Lease Option)
2. **Specific Offer Structure** (numbers, terms, seller benefits)
3. **Talking Points** for the seller conversation
4. **Exit Strategy** (BRRRR, flip, hold long-term)

Format your response as actionable bullet points.`

// StrategyAnalysis отправляет лучшие сделки в генеративную модель.
func (s *Service) StrategyAnalysis(ctx context.Context) (entity.StrategyAnalysis, error) {
	if s.generator == nil || !s.generator.Configured() {
		return entity.StrategyAnalysis{}, domain.WrapError(domain.ErrNotConfigured, errcodes.IntegrationNotConfigured,
			"Gemini API key not configured. Set GEMINI_API_KEY environment variable.")
	}

	properties, err := s.repo.List(ctx, entity.PropertyFilter{Limit: strategyLimit})
	if err != nil {
		return entity.StrategyAnalysis{}, fmt.Errorf("repo.List: %w", err)
	}

	if len(properties) == 0 {
		return entity.StrategyAnalysis{}, domain.WrapError(domain.ErrNoProperties, errcodes.NotFound,
			"No properties to analyze.")
	}

	text, err := s.generator.Generate(ctx, StrategyPrompt(properties))
	if err != nil {
		return entity.StrategyAnalysis{}, fmt.Errorf("generator.Generate: %w", err)
	}

	return entity.StrategyAnalysis{
		Properties: len(properties),
		Text:       text,
	}, nil
}

// StrategyPrompt текст запроса; суммы с разделителями тысяч.
func StrategyPrompt(properties []entity.Property) string {
	p := message.NewPrinter(language.English)

	var sb strings.Builder
	sb.WriteString(p.Sprintf(strategyIntro, len(properties)))

	for i, prop := range properties {
		sb.WriteString(p.Sprintf("\nDeal %d:\n", i+1))
		sb.WriteString(p.Sprintf("Address: %s\n", prop.Address))
		sb.WriteString(p.Sprintf("Price: $%d\n", financial.Currency(prop.Price)))
		sb.WriteString(p.Sprintf("Units: %d\n", prop.Units))
		sb.WriteString(p.Sprintf("Monthly Rent: $%d\n", financial.Currency(prop.MonthlyRent)))
		sb.WriteString(p.Sprintf("Days on Market: %d\n", prop.DaysOnMarket))

		if prop.Analysis != nil {
			sb.WriteString(p.Sprintf("AI Score: %d\n", prop.Analysis.Score))
			sb.WriteString(p.Sprintf("Cash Flow: $%d/month\n", financial.Currency(prop.Analysis.MonthlyCashFlow)))
		}

		if prop.OpportunityZone {
			sb.WriteString("✅ Opportunity Zone\n")
		}
	}

	sb.WriteString(strategyOutro)

	return sb.String()
}
