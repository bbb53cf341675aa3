package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"deal_factory/internal/domain"
	"deal_factory/internal/domain/entity"
	"deal_factory/pkg/errcodes"
	"deal_factory/pkg/httpx/reply"
	"deal_factory/pkg/httpx/req"
	"deal_factory/pkg/lox"
	"deal_factory/pkg/logx"
	"deal_factory/pkg/rest"
)

const (
	systemName    = "Deal Factory"
	systemVersion = "1.0.0"

	defaultDownPayment = 0.20
	noHotDealsMessage  = "No hot deals found. Lower threshold or add more properties."
	missingROIParams   = "Missing parameters. Required: price, rent. Optional: down (default 0.20)"
)

var endpoints = []string{ //nolint:gochecknoglobals
	"/test - Test database connection",
	"/scrape - Scrape and add properties",
	"/analyze - Run deal scoring (?async=true to queue)",
	"/financial-analysis - Calculate NOI, Cap Rate, ROI",
	"/properties - List all properties (?minScore, ?limit)",
	"/properties/{id} - Get a single property",
	"/hot-deals - Get deals scoring 80+",
	"/daily-briefing - 60-minute workflow briefing",
	"/gemini-analyze - Deep AI strategy analysis",
	"/roi-calculator - Calculate ROI for any deal",
	"/subscribers - View active subscribers",
	"/create-checkout - Create Stripe checkout session",
	"/stripe-webhook - Stripe webhook handler",
}

type PropertyServer struct {
	propertyService propertyService
	analyzeQueue    analyzeQueue
}

func NewPropertyServer(propertyService propertyService, analyzeQueue analyzeQueue) PropertyServer {
	return PropertyServer{
		propertyService: propertyService,
		analyzeQueue:    analyzeQueue,
	}
}

type propertiesQuery struct {
	MinScore *int `validate:"omitempty,min=0,max=100"`
	Limit    int  `validate:"min=0,max=1000"`
}

func (s PropertyServer) getStatus(w http.ResponseWriter, r *http.Request) {
	reply.JSON(r.Context(), w, http.StatusOK, rest.Status{
		Status:    "online",
		System:    systemName,
		Version:   systemVersion,
		Endpoints: endpoints,
	})
}

func (s PropertyServer) getTest(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if err := s.propertyService.Ping(ctx); err != nil {
		return fmt.Errorf("propertyService.Ping: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Message{
		Success:   true,
		Message:   "Database connected successfully",
		Timestamp: timestamp(),
	})

	return nil
}

func (s PropertyServer) scrape(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	added, err := s.propertyService.Scrape(ctx)
	if err != nil {
		return fmt.Errorf("propertyService.Scrape: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.ScrapeResult{
		Success:    true,
		Message:    fmt.Sprintf("Added %d properties to database", added),
		Properties: added,
		Timestamp:  timestamp(),
	})

	return nil
}

func (s PropertyServer) analyze(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if async, _ := strconv.ParseBool(r.URL.Query().Get("async")); async {
		taskID, err := s.analyzeQueue.EnqueueAnalyze(ctx)
		if err != nil {
			return fmt.Errorf("analyzeQueue.EnqueueAnalyze: %w", err)
		}

		reply.JSON(ctx, w, http.StatusAccepted, rest.AnalyzeQueued{
			Success:   true,
			TaskID:    taskID,
			Message:   "Analysis queued",
			Timestamp: timestamp(),
		})

		return nil
	}

	result, err := s.propertyService.AnalyzeAll(ctx)
	if err != nil {
		return fmt.Errorf("propertyService.AnalyzeAll: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTAnalyzeResult(result))

	return nil
}

func (s PropertyServer) getFinancialAnalysis(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	reports, err := s.propertyService.FinancialAnalysis(ctx)
	if err != nil {
		return fmt.Errorf("propertyService.FinancialAnalysis: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.List[rest.FinancialAnalysis]{
		Success:   true,
		Count:     len(reports),
		Items:     lox.Map(reports, newRESTFinancialAnalysis),
		Timestamp: timestamp(),
	})

	return nil
}

func (s PropertyServer) getProperties(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	query, err := parsePropertiesQuery(r)
	if err != nil {
		return err
	}

	properties, err := s.propertyService.List(ctx, entity.PropertyFilter{
		MinScore: query.MinScore,
		Limit:    query.Limit,
	})
	if err != nil {
		return fmt.Errorf("propertyService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.List[rest.Property]{
		Success:   true,
		Count:     len(properties),
		Items:     lox.Map(properties, newRESTProperty),
		Timestamp: timestamp(),
	})

	return nil
}

func (s PropertyServer) getProperty(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	property, err := s.propertyService.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		return fmt.Errorf("propertyService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Item[rest.Property]{
		Success:   true,
		Item:      newRESTProperty(property),
		Timestamp: timestamp(),
	})

	return nil
}

func (s PropertyServer) getHotDeals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	deals, err := s.propertyService.HotDeals(ctx)
	if err != nil {
		return fmt.Errorf("propertyService.HotDeals: %w", err)
	}

	var message *string
	if len(deals) == 0 {
		msg := noHotDealsMessage
		message = &msg
	}

	reply.JSON(ctx, w, http.StatusOK, rest.List[rest.HotDeal]{
		Success:   true,
		Count:     len(deals),
		Items:     lox.Map(deals, newRESTHotDeal),
		Message:   message,
		Timestamp: timestamp(),
	})

	return nil
}

func (s PropertyServer) getDailyBriefing(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	briefing, err := s.propertyService.DailyBriefing(ctx)
	if err != nil {
		return fmt.Errorf("propertyService.DailyBriefing: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTBriefing(briefing))

	return nil
}

func (s PropertyServer) getStrategyAnalysis(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	analysis, err := s.propertyService.StrategyAnalysis(ctx)
	if err != nil {
		return fmt.Errorf("propertyService.StrategyAnalysis: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.StrategyAnalysis{
		Success:    true,
		Properties: analysis.Properties,
		AIAnalysis: analysis.Text,
		Timestamp:  timestamp(),
	})

	return nil
}

func (s PropertyServer) getROI(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	query := r.URL.Query()

	if query.Get("price") == "" || query.Get("rent") == "" {
		return domain.NewError(errcodes.InvalidFinancialInput, missingROIParams)
	}

	price, err := parseFloat(query.Get("price"), "price")
	if err != nil {
		return err
	}

	rent, err := parseFloat(query.Get("rent"), "rent")
	if err != nil {
		return err
	}

	down := defaultDownPayment
	if raw := query.Get("down"); raw != "" {
		if down, err = parseFloat(raw, "down"); err != nil {
			return err
		}
	}

	report, err := s.propertyService.CalculateROI(price, rent, down)
	if err != nil {
		return fmt.Errorf("propertyService.CalculateROI: %w", err)
	}

	logger(ctx).Debug("roi calculated", logx.Stringer("recommendation", report.Recommendation))

	reply.JSON(ctx, w, http.StatusOK, newRESTROIResult(report, down))

	return nil
}

func parsePropertiesQuery(r *http.Request) (propertiesQuery, error) {
	var query propertiesQuery
	values := r.URL.Query()

	if raw := values.Get("minScore"); raw != "" {
		minScore, err := strconv.Atoi(raw)
		if err != nil {
			return propertiesQuery{}, domain.NewError(errcodes.InvalidPaging, fmt.Sprintf("invalid minScore %q", raw))
		}
		query.MinScore = &minScore
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return propertiesQuery{}, domain.NewError(errcodes.InvalidPaging, fmt.Sprintf("invalid limit %q", raw))
		}
		query.Limit = limit
	}

	if err := req.Validate(r, &query); err != nil {
		return propertiesQuery{}, err
	}

	return query, nil
}

func parseFloat(raw, name string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domain.WrapError(err, errcodes.InvalidFinancialInput, fmt.Sprintf("invalid %s %q", name, raw))
	}
	// ParseFloat принимает NaN и Inf без ошибки.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domain.NewError(errcodes.InvalidFinancialInput, fmt.Sprintf("%s must be a finite number, got %q", name, raw))
	}
	return v, nil
}
