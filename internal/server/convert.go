package server

import (
	"strconv"

	"deal_factory/internal/domain/entity"
	"deal_factory/internal/domain/service/financial"
	"deal_factory/pkg/lox"
	"deal_factory/pkg/rest"
)

func newRESTBreakdown(b entity.ScoreBreakdown) rest.ScoreBreakdown {
	return rest.ScoreBreakdown{
		Base:         b.Base,
		Motivation:   b.Motivation,
		CashFlow:     b.CashFlow,
		PricePerUnit: b.PricePerUnit,
		Special:      b.Special,
	}
}

func newRESTScoredDeal(d entity.ScoredDeal) rest.ScoredDeal {
	return rest.ScoredDeal{
		ID:              d.ID,
		Address:         d.Address,
		Score:           d.Score,
		Verdict:         d.Verdict.String(),
		Breakdown:       newRESTBreakdown(d.Breakdown),
		MonthlyCashFlow: financial.Currency(d.MonthlyCashFlow),
		PricePerUnit:    financial.Currency(d.PricePerUnit),
	}
}

func newRESTAnalyzeResult(result entity.AnalysisResult) rest.AnalyzeResult {
	return rest.AnalyzeResult{
		Success:    true,
		Analyzed:   result.Analyzed,
		TopDeals:   lox.Map(result.TopDeals, newRESTScoredDeal),
		AllResults: lox.Map(result.All, newRESTScoredDeal),
		Timestamp:  timestamp(),
	}
}

func newRESTProperty(p entity.Property) rest.Property {
	res := rest.Property{
		ID:              p.ID,
		Address:         p.Address,
		ZipCode:         p.ZipCode,
		Price:           p.Price,
		Units:           p.Units,
		MonthlyRent:     p.MonthlyRent,
		DaysOnMarket:    p.DaysOnMarket,
		OpportunityZone: p.OpportunityZone,
		Images:          p.Images,
		Description:     p.Description,
		Scraped:         p.ScrapedAt,
		Analyzed:        p.Analysis != nil,
		AnalyzedAt:      p.AnalyzedAt,
	}

	if res.Images == nil {
		res.Images = []string{}
	}

	if p.Analysis != nil {
		breakdown := newRESTBreakdown(p.Analysis.Breakdown)
		cashFlow := financial.Currency(p.Analysis.MonthlyCashFlow)
		pricePerUnit := financial.Currency(p.Analysis.PricePerUnit)

		res.AIScore = &p.Analysis.Score
		res.Verdict = verdict(p)
		res.Breakdown = &breakdown
		res.MonthlyCashFlow = &cashFlow
		res.PricePerUnit = &pricePerUnit
	}

	return res
}

func newRESTHotDeal(p entity.Property) rest.HotDeal {
	res := rest.HotDeal{
		ID:          p.ID,
		Address:     p.Address,
		Price:       p.Price,
		Units:       p.Units,
		MonthlyRent: p.MonthlyRent,
	}

	if p.Analysis != nil {
		res.AIScore = p.Analysis.Score
		res.Verdict = p.Analysis.Verdict.String()
		res.MonthlyCashFlow = financial.Currency(p.Analysis.MonthlyCashFlow)
		res.PricePerUnit = financial.Currency(p.Analysis.PricePerUnit)
	}

	return res
}

func newRESTFinancials(f entity.Financials) rest.Financials {
	d := financial.NewDisplay(f)

	return rest.Financials{
		MonthlyGrossIncome:  d.MonthlyGrossIncome,
		AnnualGrossIncome:   d.AnnualGrossIncome,
		OperatingExpenses:   d.OperatingExpenses,
		NOI:                 d.NOI,
		MonthlyMortgage:     d.MonthlyMortgage,
		AnnualDebtService:   d.AnnualDebtService,
		AnnualCashFlow:      d.AnnualCashFlow,
		MonthlyCashFlow:     d.MonthlyCashFlow,
		CapRate:             d.CapRate,
		CashOnCashReturn:    d.CashOnCashReturn,
		ROI:                 d.ROI,
		GrossRentMultiplier: d.GrossRentMultiplier,
		DownPaymentRequired: d.DownPaymentRequired,
	}
}

func newRESTFinancialAnalysis(r entity.FinancialReport) rest.FinancialAnalysis {
	return rest.FinancialAnalysis{
		ID:             r.Property.ID,
		Address:        r.Property.Address,
		AIScore:        score(r.Property),
		Verdict:        verdict(r.Property),
		Financials:     newRESTFinancials(r.Financials),
		Recommendation: r.Recommendation.Label(),
	}
}

func newRESTROIResult(r entity.FinancialReport, downPayment float64) rest.ROIResult {
	return rest.ROIResult{
		Input: rest.ROIInput{
			Price:              r.Property.Price,
			MonthlyRent:        r.Property.MonthlyRent,
			DownPaymentPercent: strconv.FormatFloat(downPayment*100, 'f', -1, 64) + "%",
		},
		Financials:     newRESTFinancials(r.Financials),
		Recommendation: r.Recommendation.Label(),
	}
}

func newRESTBriefing(b entity.Briefing) rest.Briefing {
	return rest.Briefing{
		Date:       b.Date.Format("2006-01-02"),
		TotalDeals: b.TotalDeals,
		TopDeals:   lox.Map(b.TopDeals, newRESTBriefingDeal),
		Workflow: lox.Map(b.Workflow, func(s entity.WorkflowStep) rest.WorkflowStep {
			return rest.WorkflowStep{Time: s.At, Action: s.Action}
		}),
	}
}

func newRESTBriefingDeal(d entity.BriefingDeal) rest.BriefingDeal {
	res := rest.BriefingDeal{
		ID:         d.Property.ID,
		Address:    d.Property.Address,
		AIScore:    score(d.Property),
		Verdict:    verdict(d.Property),
		Price:      d.Property.Price,
		Units:      d.Property.Units,
		CapRate:    financial.Percent(d.Financials.CapRate),
		ROI:        financial.Percent(d.Financials.ROI),
		ActionItem: d.ActionItem,
	}

	if d.Property.Analysis != nil {
		cashFlow := financial.Currency(d.Property.Analysis.MonthlyCashFlow)
		res.MonthlyCashFlow = &cashFlow
	}

	return res
}

func newRESTSubscriber(s entity.Subscriber) rest.Subscriber {
	return rest.Subscriber{
		ID:               s.ID,
		StripeCustomerID: s.CustomerID,
		Status:           s.Status.String(),
		PlanID:           s.PlanID,
		CurrentPeriodEnd: s.CurrentPeriodEnd,
		CreatedAt:        s.CreatedAt,
		CanceledAt:       s.CanceledAt,
	}
}

func score(p entity.Property) *int {
	if p.Analysis == nil {
		return nil
	}
	return &p.Analysis.Score
}

func verdict(p entity.Property) *string {
	if p.Analysis == nil {
		return nil
	}
	v := p.Analysis.Verdict.String()
	return &v
}
