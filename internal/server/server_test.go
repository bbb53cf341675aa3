package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81/webhook"

	"deal_factory/internal/domain"
	"deal_factory/internal/domain/entity"
	"deal_factory/internal/domain/service/billing"
	"deal_factory/internal/domain/service/property"
	"deal_factory/internal/domain/value"
	"deal_factory/internal/infrastructure/eventlog"
	"deal_factory/internal/infrastructure/payments"
	"deal_factory/pkg/errcodes"
	"deal_factory/pkg/rest"
	"deal_factory/pkg/tests"
)

const testWebhookSecret = "whsec_test_secret"

func newTestAPI(t *testing.T, ps propertyService, queue analyzeQueue, bs billingService) tests.APIClient {
	t.Helper()

	r := chi.NewRouter()
	NewServer(NewPropertyServer(ps, queue), NewBillingServer(bs)).RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return tests.NewAPIClient(t, srv.URL, srv.Client())
}

func analyzedProperty(id string, score int) entity.Property {
	return entity.Property{
		ID:          id,
		Address:     "2145 N Broad St",
		ZipCode:     "19121",
		Price:       460000,
		Units:       5,
		MonthlyRent: 5500,
		Analysis: &entity.DealScore{
			Score:           score,
			Verdict:         value.VerdictFromScore(score),
			MonthlyCashFlow: 1455.67,
			PricePerUnit:    92000,
		},
	}
}

func TestServer_Status(t *testing.T) {
	r := require.New(t)
	api := newTestAPI(t, &PropertyServiceMock{}, &AnalyzeQueueMock{}, &BillingServiceMock{})

	var status rest.Status
	resp, err := api.Get(context.Background(), "/", nil, &status, nil)
	r.NoError(err)
	r.Equal(http.StatusOK, resp.StatusCode)
	r.Equal("online", status.Status)
	r.Len(status.Endpoints, len(endpoints))
}

func TestServer_UnknownRoute(t *testing.T) {
	r := require.New(t)
	api := newTestAPI(t, &PropertyServiceMock{}, &AnalyzeQueueMock{}, &BillingServiceMock{})

	var body rest.Error
	resp, err := api.Get(context.Background(), "/nope", nil, nil, &body)
	r.NoError(err)
	r.Equal(http.StatusNotFound, resp.StatusCode)
	r.Equal(rest.ErrorCode(errcodes.NotFound), body.Code)
	r.Equal("Endpoint not found", body.Message)
}

func TestServer_CORS(t *testing.T) {
	r := require.New(t)
	api := newTestAPI(t, &PropertyServiceMock{}, &AnalyzeQueueMock{}, &BillingServiceMock{})

	resp, err := api.Get(context.Background(), "/", http.Header{"Origin": {"https://example.com"}}, nil, nil)
	r.NoError(err)
	r.Equal("*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_ROICalculator(t *testing.T) {
	svc := property.NewService(&property.RepositoryMock{}, nil, nil, time.Now)
	api := newTestAPI(t, svc, &AnalyzeQueueMock{}, &BillingServiceMock{})

	cases := []struct {
		name       string
		query      string
		wantStatus int
		wantCode   failure.ErrorCode
		check      func(r *require.Assertions, res rest.ROIResult)
	}{
		{
			name:       "default down payment",
			query:      "?price=385000&rent=4200",
			wantStatus: http.StatusOK,
			check: func(r *require.Assertions, res rest.ROIResult) {
				r.Equal(385000.0, res.Input.Price)
				r.Equal(4200.0, res.Input.MonthlyRent)
				r.Equal("20%", res.Input.DownPaymentPercent)
				r.Equal(int64(25200), res.Financials.NOI)
				r.Equal("6.55%", res.Financials.CapRate)
				r.Equal(res.Financials.CashOnCashReturn, res.Financials.ROI)
				r.Equal(int64(77000), res.Financials.DownPaymentRequired)
				r.Equal(value.RecommendationBelowTarget.Label(), res.Recommendation)
			},
		},
		{
			name:       "custom down payment",
			query:      "?price=385000&rent=4200&down=0.25",
			wantStatus: http.StatusOK,
			check: func(r *require.Assertions, res rest.ROIResult) {
				r.Equal("25%", res.Input.DownPaymentPercent)
				r.Equal(int64(96250), res.Financials.DownPaymentRequired)
			},
		},
		{
			name:       "zero rent",
			query:      "?price=100000&rent=0",
			wantStatus: http.StatusOK,
			check: func(r *require.Assertions, res rest.ROIResult) {
				r.Equal("n/a", res.Financials.GrossRentMultiplier)
			},
		},
		{name: "missing rent", query: "?price=385000", wantStatus: http.StatusBadRequest, wantCode: errcodes.InvalidFinancialInput},
		{name: "missing everything", query: "", wantStatus: http.StatusBadRequest, wantCode: errcodes.InvalidFinancialInput},
		{name: "not a number", query: "?price=abc&rent=4200", wantStatus: http.StatusBadRequest, wantCode: errcodes.InvalidFinancialInput},
		{name: "zero price", query: "?price=0&rent=4200", wantStatus: http.StatusBadRequest, wantCode: errcodes.InvalidProperty},
		{name: "down above one", query: "?price=385000&rent=4200&down=1.5", wantStatus: http.StatusBadRequest, wantCode: errcodes.InvalidFinancialInput},
		{name: "NaN price", query: "?price=NaN&rent=4200", wantStatus: http.StatusBadRequest, wantCode: errcodes.InvalidFinancialInput},
		{name: "infinite price", query: "?price=Inf&rent=4200", wantStatus: http.StatusBadRequest, wantCode: errcodes.InvalidFinancialInput},
		{name: "positive infinite price", query: "?price=%2BInf&rent=4200", wantStatus: http.StatusBadRequest, wantCode: errcodes.InvalidFinancialInput},
		{name: "NaN rent", query: "?price=385000&rent=NaN", wantStatus: http.StatusBadRequest, wantCode: errcodes.InvalidFinancialInput},
		{name: "NaN down", query: "?price=385000&rent=4200&down=NaN", wantStatus: http.StatusBadRequest, wantCode: errcodes.InvalidFinancialInput},
		{name: "overflowing income", query: "?price=1e308&rent=1e308", wantStatus: http.StatusBadRequest, wantCode: errcodes.InvalidFinancialInput},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)

			var (
				res  rest.ROIResult
				fail rest.Error
			)
			resp, err := api.Get(context.Background(), "/roi-calculator"+tt.query, nil, &res, &fail)
			r.NoError(err)
			r.Equal(tt.wantStatus, resp.StatusCode)

			if tt.check != nil {
				tt.check(r, res)
				return
			}

			r.Equal(rest.ErrorCode(tt.wantCode), fail.Code)
			r.NotEmpty(fail.Message)
		})
	}
}

func TestServer_ROICalculatorMissingMessage(t *testing.T) {
	r := require.New(t)
	api := newTestAPI(t, &PropertyServiceMock{}, &AnalyzeQueueMock{}, &BillingServiceMock{})

	var fail rest.Error
	resp, err := api.Get(context.Background(), "/roi-calculator?rent=1", nil, nil, &fail)
	r.NoError(err)
	r.Equal(http.StatusBadRequest, resp.StatusCode)
	r.Equal(missingROIParams, fail.Message)
}

func TestServer_Properties(t *testing.T) {
	var got entity.PropertyFilter

	ps := &PropertyServiceMock{
		ListFunc: func(_ context.Context, filter entity.PropertyFilter) ([]entity.Property, error) {
			got = filter
			return []entity.Property{
				analyzedProperty("a", 100),
				{ID: "b", Address: "3801 Germantown Ave", Price: 285000, Units: 3},
			}, nil
		},
	}
	api := newTestAPI(t, ps, &AnalyzeQueueMock{}, &BillingServiceMock{})

	t.Run("list with filter", func(t *testing.T) {
		r := require.New(t)

		var res rest.List[rest.Property]
		resp, err := api.Get(context.Background(), "/properties?minScore=80&limit=2", nil, &res, nil)
		r.NoError(err)
		r.Equal(http.StatusOK, resp.StatusCode)

		r.NotNil(got.MinScore)
		r.Equal(80, *got.MinScore)
		r.Equal(2, got.Limit)

		r.True(res.Success)
		r.Equal(2, res.Count)
		r.Len(res.Items, 2)

		r.True(res.Items[0].Analyzed)
		r.Equal(100, *res.Items[0].AIScore)
		r.Equal("hot deal", *res.Items[0].Verdict)
		r.Equal(int64(1456), *res.Items[0].MonthlyCashFlow)

		r.False(res.Items[1].Analyzed)
		r.Nil(res.Items[1].AIScore)
		r.Empty(res.Items[1].Images)
	})

	invalid := []struct {
		name     string
		query    string
		wantCode failure.ErrorCode
	}{
		{name: "limit not a number", query: "?limit=abc", wantCode: errcodes.InvalidPaging},
		{name: "negative limit", query: "?limit=-1", wantCode: errcodes.ValidationError},
		{name: "score above range", query: "?minScore=101", wantCode: errcodes.ValidationError},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)

			var fail rest.Error
			resp, err := api.Get(context.Background(), "/properties"+tt.query, nil, nil, &fail)
			r.NoError(err)
			r.Equal(http.StatusBadRequest, resp.StatusCode)
			r.Equal(rest.ErrorCode(tt.wantCode), fail.Code)
		})
	}
}

func TestServer_Property(t *testing.T) {
	ps := &PropertyServiceMock{
		GetFunc: func(_ context.Context, id string) (entity.Property, error) {
			switch id {
			case "found":
				return analyzedProperty(id, 90), nil
			case "bad":
				return entity.Property{}, domain.NewError(errcodes.InvalidPropertyID, "invalid property id")
			}
			return entity.Property{}, domain.NewError(errcodes.PropertyNotFound, "property not found")
		},
	}
	api := newTestAPI(t, ps, &AnalyzeQueueMock{}, &BillingServiceMock{})

	cases := []struct {
		id         string
		wantStatus int
		wantCode   failure.ErrorCode
	}{
		{id: "found", wantStatus: http.StatusOK},
		{id: "missing", wantStatus: http.StatusNotFound, wantCode: errcodes.PropertyNotFound},
		{id: "bad", wantStatus: http.StatusBadRequest, wantCode: errcodes.InvalidPropertyID},
	}

	for _, tt := range cases {
		t.Run(tt.id, func(t *testing.T) {
			r := require.New(t)

			var (
				res  rest.Item[rest.Property]
				fail rest.Error
			)
			resp, err := api.Get(context.Background(), "/properties/"+tt.id, nil, &res, &fail)
			r.NoError(err)
			r.Equal(tt.wantStatus, resp.StatusCode)

			if tt.wantStatus == http.StatusOK {
				r.Equal(tt.id, res.Item.ID)
				return
			}
			r.Equal(rest.ErrorCode(tt.wantCode), fail.Code)
		})
	}
}

func TestServer_HotDeals(t *testing.T) {
	deals := []entity.Property{analyzedProperty("a", 85)}

	ps := &PropertyServiceMock{
		HotDealsFunc: func(context.Context) ([]entity.Property, error) { return deals, nil },
	}
	api := newTestAPI(t, ps, &AnalyzeQueueMock{}, &BillingServiceMock{})

	r := require.New(t)

	var res rest.List[rest.HotDeal]
	_, err := api.Get(context.Background(), "/hot-deals", nil, &res, nil)
	r.NoError(err)
	r.Equal(1, res.Count)
	r.Nil(res.Message)
	r.Equal(85, res.Items[0].AIScore)
	r.Equal(int64(92000), res.Items[0].PricePerUnit)

	deals = nil

	res = rest.List[rest.HotDeal]{}
	_, err = api.Get(context.Background(), "/hot-deals", nil, &res, nil)
	r.NoError(err)
	r.True(res.Success)
	r.Zero(res.Count)
	r.NotNil(res.Items)
	r.NotNil(res.Message)
	r.Equal(noHotDealsMessage, *res.Message)
}

func TestServer_SoftFailures(t *testing.T) {
	ps := &PropertyServiceMock{
		StrategyAnalysisFunc: func(context.Context) (entity.StrategyAnalysis, error) {
			return entity.StrategyAnalysis{}, domain.WrapError(domain.ErrNotConfigured, errcodes.IntegrationNotConfigured,
				"Gemini API key not configured. Set GEMINI_API_KEY environment variable.")
		},
		FinancialAnalysisFunc: func(context.Context) ([]entity.FinancialReport, error) {
			return nil, fmt.Errorf("wrapped: %w", domain.WrapError(domain.ErrNoProperties, errcodes.NotFound,
				"No properties found. Run /scrape and /analyze first."))
		},
	}
	queue := &AnalyzeQueueMock{
		EnqueueAnalyzeFunc: func(context.Context) (string, error) {
			return "", domain.WrapError(domain.ErrNotConfigured, errcodes.IntegrationNotConfigured,
				"Background queue not configured. Set REDIS_ADDRESS environment variable.")
		},
	}
	api := newTestAPI(t, ps, queue, &BillingServiceMock{})

	cases := []struct {
		endpoint string
		wantMsg  string
	}{
		{endpoint: "/gemini-analyze", wantMsg: "Gemini API key not configured. Set GEMINI_API_KEY environment variable."},
		{endpoint: "/financial-analysis", wantMsg: "No properties found. Run /scrape and /analyze first."},
		{endpoint: "/analyze?async=true", wantMsg: "Background queue not configured. Set REDIS_ADDRESS environment variable."},
	}

	for _, tt := range cases {
		t.Run(tt.endpoint, func(t *testing.T) {
			r := require.New(t)

			var res rest.Message
			resp, err := api.Get(context.Background(), tt.endpoint, nil, &res, nil)
			r.NoError(err)
			r.Equal(http.StatusOK, resp.StatusCode)
			r.False(res.Success)
			r.Equal(tt.wantMsg, res.Message)
		})
	}
}

func TestServer_InternalError(t *testing.T) {
	r := require.New(t)

	ps := &PropertyServiceMock{
		PingFunc: func(context.Context) error {
			return domain.WrapError(errors.New("connection refused"), errcodes.InternalServerError, "failed to ping database")
		},
	}
	api := newTestAPI(t, ps, &AnalyzeQueueMock{}, &BillingServiceMock{})

	var fail rest.Error
	resp, err := api.Get(context.Background(), "/test", nil, nil, &fail)
	r.NoError(err)
	r.Equal(http.StatusInternalServerError, resp.StatusCode)
	r.Equal(rest.ErrorCode(errcodes.InternalServerError), fail.Code)
	r.Contains(fail.Message, "connection refused")
}

func TestServer_Analyze(t *testing.T) {
	ps := &PropertyServiceMock{
		AnalyzeAllFunc: func(context.Context) (entity.AnalysisResult, error) {
			deal := entity.ScoredDeal{ID: "a", Address: "2145 N Broad St", DealScore: *analyzedProperty("a", 100).Analysis}
			return entity.AnalysisResult{Analyzed: 1, TopDeals: []entity.ScoredDeal{deal}, All: []entity.ScoredDeal{deal}}, nil
		},
	}
	queue := &AnalyzeQueueMock{
		EnqueueAnalyzeFunc: func(context.Context) (string, error) { return "task-1", nil },
	}
	api := newTestAPI(t, ps, queue, &BillingServiceMock{})

	t.Run("sync", func(t *testing.T) {
		r := require.New(t)

		var res rest.AnalyzeResult
		resp, err := api.Post(context.Background(), "/analyze", nil, nil, &res, nil)
		r.NoError(err)
		r.Equal(http.StatusOK, resp.StatusCode)
		r.Equal(1, res.Analyzed)
		r.Equal(100, res.TopDeals[0].Score)
		r.Equal("hot deal", res.AllResults[0].Verdict)
	})

	t.Run("async", func(t *testing.T) {
		r := require.New(t)

		var res rest.AnalyzeQueued
		resp, err := api.Get(context.Background(), "/analyze?async=true", nil, &res, nil)
		r.NoError(err)
		r.Equal(http.StatusAccepted, resp.StatusCode)
		r.Equal("task-1", res.TaskID)
		r.Len(queue.EnqueueAnalyzeCalls(), 1)
	})
}

func TestServer_Checkout(t *testing.T) {
	r := require.New(t)

	bs := &BillingServiceMock{
		CreateCheckoutFunc: func(context.Context) (entity.CheckoutSession, error) {
			return entity.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/cs_1"}, nil
		},
	}
	api := newTestAPI(t, &PropertyServiceMock{}, &AnalyzeQueueMock{}, bs)

	var res rest.Checkout
	resp, err := api.Post(context.Background(), "/create-checkout", nil, nil, &res, nil)
	r.NoError(err)
	r.Equal(http.StatusOK, resp.StatusCode)
	r.True(res.Success)
	r.Equal("cs_1", res.SessionID)
	r.Equal("https://checkout.stripe.com/c/cs_1", res.CheckoutURL)
}

func subscriptionCreatedJSON(eventID string) string {
	return fmt.Sprintf(`{
		"id": %q,
		"object": "event",
		"type": "customer.subscription.created",
		"created": 1767000100,
		"data": {"object": {
			"id": "sub_123",
			"object": "subscription",
			"customer": "cus_456",
			"status": "active",
			"created": 1767000000,
			"current_period_end": 1769678400,
			"items": {"object": "list", "data": [{"id": "si_1", "object": "subscription_item", "price": {"id": "price_pro", "object": "price"}}]}
		}}
	}`, eventID)
}

func TestServer_StripeWebhook(t *testing.T) {
	store := map[string]entity.Subscriber{}
	subscribers := &billing.SubscriberRepositoryMock{
		UpsertFunc: func(_ context.Context, sub entity.Subscriber) error {
			store[sub.ID] = sub
			return nil
		},
		ListByStatusFunc: func(_ context.Context, status value.SubscriptionStatus) ([]entity.Subscriber, error) {
			var res []entity.Subscriber
			for _, s := range store {
				if s.Status == status {
					res = append(res, s)
				}
			}
			return res, nil
		},
	}

	bs := billing.NewService(
		subscribers,
		payments.NewStripe(payments.Config{WebhookSecret: testWebhookSecret}, nil),
		eventlog.NewMemory(time.Hour),
	)
	api := newTestAPI(t, &PropertyServiceMock{}, &AnalyzeQueueMock{}, bs)

	payload := subscriptionCreatedJSON("evt_1")
	signature := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	}).Header

	t.Run("replayed delivery applied once", func(t *testing.T) {
		r := require.New(t)

		for range 2 {
			var res rest.WebhookReceived
			resp, err := api.PostJSON(context.Background(), "/stripe-webhook",
				http.Header{stripeSignatureHeader: {signature}}, payload, &res, nil)
			r.NoError(err)
			r.Equal(http.StatusOK, resp.StatusCode)
			r.True(res.Received)
		}

		r.Len(subscribers.UpsertCalls(), 1)
		r.Equal(value.SubscriptionActive, store["sub_123"].Status)
		r.Equal("price_pro", store["sub_123"].PlanID)

		var active rest.Subscribers
		_, err := api.Get(context.Background(), "/subscribers", nil, &active, nil)
		r.NoError(err)
		r.Equal(1, active.TotalActive)
		r.Equal("cus_456", active.Subscribers[0].StripeCustomerID)
	})

	t.Run("signature mismatch", func(t *testing.T) {
		r := require.New(t)

		var fail rest.Error
		resp, err := api.PostJSON(context.Background(), "/stripe-webhook",
			http.Header{stripeSignatureHeader: {"t=1,v1=deadbeef"}}, subscriptionCreatedJSON("evt_2"), nil, &fail)
		r.NoError(err)
		r.Equal(http.StatusBadRequest, resp.StatusCode)
		r.Equal(rest.ErrorCode(errcodes.InvalidWebhookSignature), fail.Code)
		r.Len(subscribers.UpsertCalls(), 1)
	})
}
