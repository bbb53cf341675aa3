package value

// Verdict качественная оценка сделки по итоговому баллу.
type Verdict string

const (
	VerdictHotDeal     Verdict = "hot deal"
	VerdictGood        Verdict = "good"
	VerdictNeedsReview Verdict = "needs review"
	VerdictPass        Verdict = "pass"
)

const (
	hotDealMinScore     = 80
	goodMinScore        = 60
	needsReviewMinScore = 40
)

// VerdictFromScore проверяет пороги сверху вниз.
func VerdictFromScore(score int) Verdict {
	switch {
	case score >= hotDealMinScore:
		return VerdictHotDeal
	case score >= goodMinScore:
		return VerdictGood
	case score >= needsReviewMinScore:
		return VerdictNeedsReview
	default:
		return VerdictPass
	}
}

// HotDealMinScore порог для выборки горячих сделок.
func HotDealMinScore() int {
	return hotDealMinScore
}

func (v Verdict) String() string {
	return string(v)
}

// Label подпись для сообщений в боте.
func (v Verdict) Label() string {
	switch v {
	case VerdictHotDeal:
		return "🔥 HOT DEAL"
	case VerdictGood:
		return "✅ Good"
	case VerdictNeedsReview:
		return "⚠️ Review"
	case VerdictPass:
		return "❌ Pass"
	}
	return string(v)
}
