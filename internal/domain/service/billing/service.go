package billing

import (
	"context"
	"fmt"

	"deal_factory/internal/domain/entity"
	"deal_factory/internal/domain/value"
	"deal_factory/pkg/logx"
)

//go:generate moq -rm -out subscriber_repository_mock.gen.go . SubscriberRepository:SubscriberRepositoryMock
type SubscriberRepository interface {
	Upsert(ctx context.Context, sub entity.Subscriber) error
	ListByStatus(ctx context.Context, status value.SubscriptionStatus) ([]entity.Subscriber, error)
}

//go:generate moq -rm -out payment_provider_mock.gen.go . PaymentProvider:PaymentProviderMock
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context) (entity.CheckoutSession, error)
	ParseEvent(payload []byte, signature string) (entity.SubscriptionEvent, error)
}

// EventLog журнал id уже применённых событий.
type EventLog interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	Mark(ctx context.Context, eventID string) error
}

type Service struct {
	subscribers SubscriberRepository
	provider    PaymentProvider
	events      EventLog
}

func NewService(
	subscribers SubscriberRepository,
	provider PaymentProvider,
	events EventLog,
) *Service {
	return &Service{
		subscribers: subscribers,
		provider:    provider,
		events:      events,
	}
}

// HandleWebhook проверяет подпись и применяет событие.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.provider.ParseEvent(payload, signature)
	if err != nil {
		return fmt.Errorf("provider.ParseEvent: %w", err)
	}

	return s.HandleEvent(ctx, event)
}

// HandleEvent применяет событие подписки. Повторная доставка того же события
// ничего не меняет, в журнал событие попадает только после успешной записи.
func (s *Service) HandleEvent(ctx context.Context, event entity.SubscriptionEvent) error {
	seen, err := s.events.Seen(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("events.Seen: %w", err)
	}

	if seen {
		logger(ctx).Info("webhook event already processed", logx.FieldEventID, event.ID)
		return nil
	}

	if !event.Type.Handled() {
		logger(ctx).Info("unhandled webhook event type", logx.FieldEventID, event.ID, logx.FieldEventType, event.Type)
		return nil
	}

	sub := event.Subscription

	if event.Type == value.SubscriptionDeleted {
		sub.Status = value.SubscriptionCanceled
		if sub.CanceledAt == nil {
			canceledAt := event.OccurredAt
			sub.CanceledAt = &canceledAt
		}
	}

	if err := s.subscribers.Upsert(ctx, sub); err != nil {
		return fmt.Errorf("subscribers.Upsert: %w", err)
	}

	if err := s.events.Mark(ctx, event.ID); err != nil {
		return fmt.Errorf("events.Mark: %w", err)
	}

	logger(ctx).Info("subscription updated",
		logx.FieldEventID, event.ID,
		logx.FieldEventType, event.Type,
		"subscription_id", sub.ID,
		"status", sub.Status,
	)

	return nil
}

func (s *Service) CreateCheckout(ctx context.Context) (entity.CheckoutSession, error) {
	session, err := s.provider.CreateCheckoutSession(ctx)
	if err != nil {
		return entity.CheckoutSession{}, fmt.Errorf("provider.CreateCheckoutSession: %w", err)
	}

	return session, nil
}

func (s *Service) ActiveSubscribers(ctx context.Context) ([]entity.Subscriber, error) {
	subs, err := s.subscribers.ListByStatus(ctx, value.SubscriptionActive)
	if err != nil {
		return nil, fmt.Errorf("subscribers.ListByStatus: %w", err)
	}

	return subs, nil
}
