package property

import (
	"context"
	"fmt"

	"deal_factory/internal/domain/entity"
	"deal_factory/internal/domain/service/financial"
)

const (
	urgentMinScore      = 85
	callMinScore        = 75
	offerLetterMinScore = 65
)

// DailyBriefing топ сделок дня с показателями и планом на 60 минут.
func (s *Service) DailyBriefing(ctx context.Context) (entity.Briefing, error) {
	properties, err := s.repo.List(ctx, entity.PropertyFilter{Limit: briefingLimit})
	if err != nil {
		return entity.Briefing{}, fmt.Errorf("repo.List: %w", err)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return entity.Briefing{}, fmt.Errorf("repo.Count: %w", err)
	}

	deals := make([]entity.BriefingDeal, 0, len(properties))
	for _, p := range properties {
		metrics, err := financial.Analyze(p, s.assumptions)
		if err != nil {
			return entity.Briefing{}, fmt.Errorf("financial.Analyze(%s): %w", p.ID, err)
		}

		deals = append(deals, entity.BriefingDeal{
			Property:   p,
			Financials: metrics,
			ActionItem: ActionItem(p),
		})
	}

	return entity.Briefing{
		Date:       s.now().UTC(),
		TotalDeals: total,
		TopDeals:   deals,
		Workflow:   Workflow(),
	}, nil
}

// ActionItem следующий шаг по объекту в зависимости от балла.
func ActionItem(p entity.Property) string {
	switch score := p.Score(); {
	case score >= urgentMinScore:
		return fmt.Sprintf("🔥 URGENT: Contact seller TODAY. %d days on market = motivated.", p.DaysOnMarket)
	case score >= callMinScore:
		return "📞 Call seller this week. Opportunity Zone benefits available."
	case score >= offerLetterMinScore:
		return "📧 Send offer letter. Good cash flow potential."
	default:
		return "📊 Review comps and neighborhood trends before proceeding."
	}
}

// Workflow ежедневный 60-минутный порядок работы с сделками.
func Workflow() []entity.WorkflowStep {
	return []entity.WorkflowStep{
		{At: "9:00 AM (2 min)", Action: "Review this briefing"},
		{At: "9:02 AM (10 min)", Action: "GET /financial-analysis for detailed numbers"},
		{At: "9:12 AM (15 min)", Action: "GET /gemini-analyze for creative strategies"},
		{At: "9:27 AM (3 min)", Action: "GET /hot-deals to filter 80+ scoring properties"},
		{At: "9:30 AM (20 min)", Action: "Draft offers, send SMS, schedule visits"},
		{At: "9:50 AM (10 min)", Action: "Update pipeline in dashboard"},
	}
}
