package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"deal_factory/internal/domain"
	"deal_factory/pkg/errcodes"
	"deal_factory/pkg/httpx/reply"
	"deal_factory/pkg/logx"
	"deal_factory/pkg/rest"
)

const corsMaxAge = 300

func (s Server) RegisterRoutes(r chi.Router) {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         corsMaxAge,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		reply.Status(r.Context(), w, http.StatusNotFound, errcodes.NotFound, "Endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		reply.Status(r.Context(), w, http.StatusMethodNotAllowed, errcodes.ValidationError, "Method not allowed")
	})

	r.Get("/", s.getStatus)
	r.Get("/test", handler(s.getTest))

	r.Get("/scrape", handler(s.scrape))
	r.Post("/scrape", handler(s.scrape))
	r.Get("/analyze", handler(s.analyze))
	r.Post("/analyze", handler(s.analyze))

	r.Get("/financial-analysis", handler(s.getFinancialAnalysis))
	r.Route("/properties", func(r chi.Router) {
		r.Get("/", handler(s.getProperties))
		r.Get("/{id}", handler(s.getProperty))
	})
	r.Get("/hot-deals", handler(s.getHotDeals))
	r.Get("/daily-briefing", handler(s.getDailyBriefing))
	r.Get("/gemini-analyze", handler(s.getStrategyAnalysis))
	r.Get("/roi-calculator", handler(s.getROI))

	r.Get("/subscribers", handler(s.getSubscribers))
	r.Post("/create-checkout", handler(s.postCheckout))
	r.Post("/stripe-webhook", handler(s.postStripeWebhook))
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			replyError(w, r, err)
		}
	}
}

// replyError выключенная интеграция и пустая база отвечают 200 с success=false,
// доменные коды переводятся в статус, остальное уходит в reply.Error.
func replyError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	msg, _ := domain.Message(err)

	if errors.Is(err, domain.ErrNotConfigured) || errors.Is(err, domain.ErrNoProperties) {
		logger(ctx).Info("soft failure", "message", msg)
		reply.JSON(ctx, w, http.StatusOK, rest.Message{
			Success:   false,
			Message:   msg,
			Timestamp: timestamp(),
		})
		return
	}

	code, ok := domain.GetCode(err)
	if !ok {
		reply.Error(ctx, w, err)
		return
	}

	switch code {
	case errcodes.PropertyNotFound, errcodes.SubscriberNotFound:
		reply.Status(ctx, w, http.StatusNotFound, code, msg)
	case errcodes.InvalidProperty,
		errcodes.InvalidFinancialInput,
		errcodes.InvalidPropertyID,
		errcodes.InvalidPaging,
		errcodes.InvalidWebhookSignature,
		errcodes.InvalidWebhookPayload,
		errcodes.InvalidSubscriptionStatus:
		reply.Status(ctx, w, http.StatusBadRequest, code, msg)
	default:
		logger(ctx).Error("internal error", logx.Stringer("code", code), logx.Error(err))
		reply.Status(ctx, w, http.StatusInternalServerError, code, internalMessage(err))
	}
}

// internalMessage текст доменной ошибки с причиной, без префиксов обёрток.
func internalMessage(err error) string {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return appErr.Error()
	}
	return err.Error()
}
