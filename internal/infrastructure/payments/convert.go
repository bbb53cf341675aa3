package payments

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stripe/stripe-go/v81"

	"deal_factory/internal/domain"
	"deal_factory/internal/domain/entity"
	"deal_factory/internal/domain/value"
	"deal_factory/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func eventType(t stripe.EventType) value.SubscriptionEventType {
	return value.SubscriptionEventType(t)
}

func newSubscriber(sub stripe.Subscription, occurredAt time.Time) (entity.Subscriber, error) {
	if sub.ID == "" {
		return entity.Subscriber{}, domain.NewError(errcodes.InvalidWebhookPayload, "subscription id is empty")
	}

	status, err := value.ParseSubscriptionStatus(string(sub.Status))
	if err != nil {
		return entity.Subscriber{}, domain.WrapError(err, errcodes.InvalidWebhookPayload, "invalid subscription status")
	}

	result := entity.Subscriber{
		ID:               sub.ID,
		Status:           status,
		CurrentPeriodEnd: unixOrZero(sub.CurrentPeriodEnd),
		CreatedAt:        unixOrZero(sub.Created),
		UpdatedAt:        occurredAt,
	}

	if result.CreatedAt.IsZero() {
		result.CreatedAt = occurredAt
	}

	if sub.Customer != nil {
		result.CustomerID = sub.Customer.ID
	}

	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		result.PlanID = sub.Items.Data[0].Price.ID
	}

	if sub.CanceledAt > 0 {
		canceledAt := unixOrZero(sub.CanceledAt)
		result.CanceledAt = &canceledAt
	}

	return result, nil
}

func unixOrZero(ts int64) time.Time {
	if ts <= 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
