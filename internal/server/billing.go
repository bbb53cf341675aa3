package server

import (
	"fmt"
	"io"
	"net/http"

	"deal_factory/internal/domain"
	"deal_factory/pkg/errcodes"
	"deal_factory/pkg/httpx/reply"
	"deal_factory/pkg/lox"
	"deal_factory/pkg/rest"
)

const (
	stripeSignatureHeader = "Stripe-Signature"
	maxWebhookBodyBytes   = 1 << 16
)

type BillingServer struct {
	billingService billingService
}

func NewBillingServer(billingService billingService) BillingServer {
	return BillingServer{
		billingService: billingService,
	}
}

func (s BillingServer) getSubscribers(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	subscribers, err := s.billingService.ActiveSubscribers(ctx)
	if err != nil {
		return fmt.Errorf("billingService.ActiveSubscribers: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Subscribers{
		Success:     true,
		TotalActive: len(subscribers),
		Subscribers: lox.Map(subscribers, newRESTSubscriber),
		Timestamp:   timestamp(),
	})

	return nil
}

func (s BillingServer) postCheckout(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	session, err := s.billingService.CreateCheckout(ctx)
	if err != nil {
		return fmt.Errorf("billingService.CreateCheckout: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Checkout{
		Success:     true,
		CheckoutURL: session.URL,
		SessionID:   session.ID,
	})

	return nil
}

// postStripeWebhook подпись проверяется по сырому телу запроса.
func (s BillingServer) postStripeWebhook(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
	if err != nil {
		return domain.WrapError(err, errcodes.InvalidWebhookPayload, "failed to read webhook body")
	}

	if err = s.billingService.HandleWebhook(ctx, payload, r.Header.Get(stripeSignatureHeader)); err != nil {
		return fmt.Errorf("billingService.HandleWebhook: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.WebhookReceived{Received: true})

	return nil
}
