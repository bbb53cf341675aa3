package value

import (
	"fmt"

	"deal_factory/internal/domain"
	"deal_factory/pkg/errcodes"
)

// SubscriptionStatus статус подписки у платёжного провайдера.
type SubscriptionStatus string

const (
	SubscriptionActive            SubscriptionStatus = "active"
	SubscriptionTrialing          SubscriptionStatus = "trialing"
	SubscriptionPastDue           SubscriptionStatus = "past_due"
	SubscriptionUnpaid            SubscriptionStatus = "unpaid"
	SubscriptionIncomplete        SubscriptionStatus = "incomplete"
	SubscriptionIncompleteExpired SubscriptionStatus = "incomplete_expired"
	SubscriptionPaused            SubscriptionStatus = "paused"
	SubscriptionCanceled          SubscriptionStatus = "canceled"
)

func ParseSubscriptionStatus(s string) (SubscriptionStatus, error) {
	switch status := SubscriptionStatus(s); status {
	case SubscriptionActive,
		SubscriptionTrialing,
		SubscriptionPastDue,
		SubscriptionUnpaid,
		SubscriptionIncomplete,
		SubscriptionIncompleteExpired,
		SubscriptionPaused,
		SubscriptionCanceled:
		return status, nil
	}

	return "", domain.NewError(errcodes.InvalidSubscriptionStatus, fmt.Sprintf("unknown subscription status %q", s))
}

func (s SubscriptionStatus) String() string {
	return string(s)
}

// SubscriptionEventType тип события вебхука, которое мы обрабатываем.
type SubscriptionEventType string

const (
	SubscriptionCreated SubscriptionEventType = "customer.subscription.created"
	SubscriptionUpdated SubscriptionEventType = "customer.subscription.updated"
	SubscriptionDeleted SubscriptionEventType = "customer.subscription.deleted"
)

// Handled true для событий жизненного цикла подписки.
func (t SubscriptionEventType) Handled() bool {
	switch t {
	case SubscriptionCreated, SubscriptionUpdated, SubscriptionDeleted:
		return true
	}
	return false
}
