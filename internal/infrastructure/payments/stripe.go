package payments

import (
	"context"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"

	"deal_factory/internal/domain"
	"deal_factory/internal/domain/entity"
	"deal_factory/pkg/errcodes"
)

type Config struct {
	SecretKey     string
	PriceID       string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
	APIURL        string // пусто - api.stripe.com
}

// Stripe создаёт сессии оплаты и проверяет подпись вебхуков.
type Stripe struct {
	api *client.API
	cfg Config
}

func NewStripe(cfg Config, httpClient *http.Client) *Stripe {
	s := &Stripe{cfg: cfg}

	if cfg.SecretKey == "" {
		return s
	}

	backendCfg := &stripe.BackendConfig{HTTPClient: httpClient}
	if cfg.APIURL != "" {
		backendCfg.URL = stripe.String(cfg.APIURL)
	}

	s.api = client.New(cfg.SecretKey, stripe.NewBackendsWithConfig(backendCfg))

	return s
}

// CreateCheckoutSession подписка на один price, оплата картой.
func (s *Stripe) CreateCheckoutSession(ctx context.Context) (entity.CheckoutSession, error) {
	if s.api == nil || s.cfg.PriceID == "" {
		return entity.CheckoutSession{}, domain.WrapError(domain.ErrNotConfigured, errcodes.IntegrationNotConfigured,
			"Stripe not configured. Set STRIPE_SECRET_KEY and STRIPE_PRICE_ID.")
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.cfg.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.cfg.SuccessURL),
		CancelURL:  stripe.String(s.cfg.CancelURL),
	}
	params.Context = ctx

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return entity.CheckoutSession{}, domain.WrapError(err, errcodes.PaymentProviderFailed, "failed to create checkout session")
	}

	return entity.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// ParseEvent проверяет подпись и разбирает событие подписки.
// Для типов, которые мы не обрабатываем, Subscription остаётся пустым.
func (s *Stripe) ParseEvent(payload []byte, signature string) (entity.SubscriptionEvent, error) {
	if s.cfg.WebhookSecret == "" {
		return entity.SubscriptionEvent{}, domain.WrapError(domain.ErrNotConfigured, errcodes.IntegrationNotConfigured,
			"Webhook secret not configured. Set STRIPE_WEBHOOK_SECRET.")
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, s.cfg.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return entity.SubscriptionEvent{}, domain.WrapError(err, errcodes.InvalidWebhookSignature,
			"Webhook Error: "+err.Error())
	}

	return newSubscriptionEvent(event)
}

func newSubscriptionEvent(event stripe.Event) (entity.SubscriptionEvent, error) {
	result := entity.SubscriptionEvent{
		ID:         event.ID,
		Type:       eventType(event.Type),
		OccurredAt: time.Unix(event.Created, 0).UTC(),
	}

	if !result.Type.Handled() {
		return result, nil
	}

	if event.Data == nil {
		return entity.SubscriptionEvent{}, domain.NewError(errcodes.InvalidWebhookPayload, "event has no data object")
	}

	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return entity.SubscriptionEvent{}, domain.WrapError(err, errcodes.InvalidWebhookPayload, "failed to decode subscription")
	}

	subscriber, err := newSubscriber(sub, result.OccurredAt)
	if err != nil {
		return entity.SubscriptionEvent{}, err
	}

	result.Subscription = subscriber

	return result, nil
}
