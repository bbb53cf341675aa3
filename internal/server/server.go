package server

import (
	"context"
	"time"

	"deal_factory/internal/domain/entity"
)

//go:generate moq -rm -out property_service_mock.gen.go . propertyService:PropertyServiceMock
type propertyService interface {
	Ping(ctx context.Context) error
	Scrape(ctx context.Context) (int, error)
	AnalyzeAll(ctx context.Context) (entity.AnalysisResult, error)
	FinancialAnalysis(ctx context.Context) ([]entity.FinancialReport, error)
	CalculateROI(price, monthlyRent, downPayment float64) (entity.FinancialReport, error)
	List(ctx context.Context, filter entity.PropertyFilter) ([]entity.Property, error)
	Get(ctx context.Context, id string) (entity.Property, error)
	HotDeals(ctx context.Context) ([]entity.Property, error)
	DailyBriefing(ctx context.Context) (entity.Briefing, error)
	StrategyAnalysis(ctx context.Context) (entity.StrategyAnalysis, error)
}

//go:generate moq -rm -out analyze_queue_mock.gen.go . analyzeQueue:AnalyzeQueueMock
type analyzeQueue interface {
	EnqueueAnalyze(ctx context.Context) (string, error)
}

//go:generate moq -rm -out billing_service_mock.gen.go . billingService:BillingServiceMock
type billingService interface {
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	CreateCheckout(ctx context.Context) (entity.CheckoutSession, error)
	ActiveSubscribers(ctx context.Context) ([]entity.Subscriber, error)
}

// Server объединяет HTTP сервера по сущностям.
type Server struct {
	PropertyServer
	BillingServer
}

func NewServer(
	propertyServer PropertyServer,
	billingServer BillingServer,
) Server {
	return Server{
		PropertyServer: propertyServer,
		BillingServer:  billingServer,
	}
}

func timestamp() time.Time {
	return time.Now().UTC()
}
