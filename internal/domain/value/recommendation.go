package value

// Recommendation инвестиционная рекомендация по cap rate и cash-on-cash.
type Recommendation string

const (
	RecommendationExcellent   Recommendation = "excellent"
	RecommendationGood        Recommendation = "good"
	RecommendationAcceptable  Recommendation = "acceptable"
	RecommendationBelowTarget Recommendation = "below target"
)

func (r Recommendation) String() string {
	return string(r)
}

// Description развёрнутый текст рекомендации.
func (r Recommendation) Description() string {
	switch r {
	case RecommendationExcellent:
		return "Excellent Deal - Move Fast!"
	case RecommendationGood:
		return "Good ROI - Strong Opportunity"
	case RecommendationAcceptable:
		return "Acceptable - Review Terms"
	case RecommendationBelowTarget:
		return "Below Target - Pass or Negotiate"
	}
	return string(r)
}

// Label текст с иконкой для ответов API.
func (r Recommendation) Label() string {
	switch r {
	case RecommendationExcellent:
		return "🔥 " + r.Description()
	case RecommendationGood:
		return "✅ " + r.Description()
	case RecommendationAcceptable:
		return "⚠️ " + r.Description()
	case RecommendationBelowTarget:
		return "❌ " + r.Description()
	}
	return string(r)
}
