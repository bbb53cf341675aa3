package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"deal_factory/internal/domain"
	"deal_factory/internal/domain/value"
	"deal_factory/pkg/errcodes"
)

func TestVerdictFromScore(t *testing.T) {
	rq := require.New(t)

	for score, verdict := range map[int]value.Verdict{
		100: value.VerdictHotDeal,
		80:  value.VerdictHotDeal,
		79:  value.VerdictGood,
		60:  value.VerdictGood,
		59:  value.VerdictNeedsReview,
		40:  value.VerdictNeedsReview,
		39:  value.VerdictPass,
		0:   value.VerdictPass,
	} {
		rq.Equal(verdict, value.VerdictFromScore(score), "score %d", score)
	}
}

func TestParseSubscriptionStatus(t *testing.T) {
	rq := require.New(t)

	for _, s := range []string{"active", "trialing", "past_due", "unpaid", "incomplete", "incomplete_expired", "paused", "canceled"} {
		status, err := value.ParseSubscriptionStatus(s)
		rq.NoError(err)
		rq.Equal(s, status.String())
	}

	_, err := value.ParseSubscriptionStatus("cancelled")
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.InvalidSubscriptionStatus, code)
}

func TestSubscriptionEventTypeHandled(t *testing.T) {
	rq := require.New(t)

	rq.True(value.SubscriptionCreated.Handled())
	rq.True(value.SubscriptionUpdated.Handled())
	rq.True(value.SubscriptionDeleted.Handled())
	rq.False(value.SubscriptionEventType("invoice.paid").Handled())
}

func TestRecommendationLabel(t *testing.T) {
	rq := require.New(t)

	rq.Equal("🔥 Excellent Deal - Move Fast!", value.RecommendationExcellent.Label())
	rq.Equal("❌ Below Target - Pass or Negotiate", value.RecommendationBelowTarget.Label())
	rq.Equal("✅ Good", value.VerdictGood.Label())
}
