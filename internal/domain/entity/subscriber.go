package entity

import (
	"time"

	"deal_factory/internal/domain/value"
)

// Subscriber подписка платёжного провайдера, ключ - id подписки.
type Subscriber struct {
	ID               string                   `json:"id"`
	CustomerID       string                   `json:"stripeCustomerId"`
	Status           value.SubscriptionStatus `json:"status"`
	PlanID           string                   `json:"planId"`
	CurrentPeriodEnd time.Time                `json:"currentPeriodEnd"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`
	CanceledAt       *time.Time               `json:"canceledAt,omitempty"`
}

// SubscriptionEvent событие вебхука после проверки подписи.
type SubscriptionEvent struct {
	ID           string
	Type         value.SubscriptionEventType
	Subscription Subscriber
	OccurredAt   time.Time
}

// CheckoutSession сессия оплаты подписки.
type CheckoutSession struct {
	ID  string `json:"sessionId"`
	URL string `json:"checkoutUrl"`
}
