// Модели ответов HTTP API. Формат полей повторяет исходный JSON-контракт клиента.
package rest

import "time"

// Status корневой документ сервиса.
type Status struct {
	Status    string   `json:"status"`
	System    string   `json:"system"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// Message ответ без данных. Success=false для выключенных интеграций и пустой базы.
type Message struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ScrapeResult struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	Properties int       `json:"properties"`
	Timestamp  time.Time `json:"timestamp"`
}

type AnalyzeResult struct {
	Success    bool         `json:"success"`
	Analyzed   int          `json:"analyzed"`
	TopDeals   []ScoredDeal `json:"topDeals"`
	AllResults []ScoredDeal `json:"allResults"`
	Timestamp  time.Time    `json:"timestamp"`
}

// AnalyzeQueued задача пересчёта поставлена в очередь.
type AnalyzeQueued struct {
	Success   bool      `json:"success"`
	TaskID    string    `json:"taskId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ScoreBreakdown struct {
	Base         int `json:"base"`
	Motivation   int `json:"motivation"`
	CashFlow     int `json:"cashFlow"`
	PricePerUnit int `json:"pricePerUnit"`
	Special      int `json:"special"`
}

type ScoredDeal struct {
	ID              string         `json:"id"`
	Address         string         `json:"address"`
	Score           int            `json:"score"`
	Verdict         string         `json:"verdict"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
	MonthlyCashFlow int64          `json:"monthlyCashFlow"`
	PricePerUnit    int64          `json:"pricePerUnit"`
}

// List общий формат списочных ответов.
type List[T any] struct {
	Success   bool      `json:"success"`
	Count     int       `json:"count"`
	Items     []T       `json:"items"`
	Message   *string   `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Item[T any] struct {
	Success   bool      `json:"success"`
	Item      T         `json:"item"`
	Timestamp time.Time `json:"timestamp"`
}

type Property struct {
	ID              string          `json:"id"`
	Address         string          `json:"address"`
	ZipCode         string          `json:"zipCode"`
	Price           float64         `json:"price"`
	Units           int             `json:"units"`
	MonthlyRent     float64         `json:"monthlyRent"`
	DaysOnMarket    int             `json:"daysOnMarket"`
	OpportunityZone bool            `json:"opportunityZone"`
	Images          []string        `json:"images"`
	Description     string          `json:"description"`
	Scraped         time.Time       `json:"scraped"`
	Analyzed        bool            `json:"analyzed"`
	AIScore         *int            `json:"aiScore"`
	Verdict         *string         `json:"verdict"`
	Breakdown       *ScoreBreakdown `json:"scoreBreakdown,omitempty"`
	MonthlyCashFlow *int64          `json:"monthlyCashFlow,omitempty"`
	PricePerUnit    *int64          `json:"pricePerUnit,omitempty"`
	AnalyzedAt      *time.Time      `json:"analyzedAt,omitempty"`
}

type HotDeal struct {
	ID              string  `json:"id"`
	Address         string  `json:"address"`
	Price           float64 `json:"price"`
	Units           int     `json:"units"`
	MonthlyRent     float64 `json:"monthlyRent"`
	AIScore         int     `json:"aiScore"`
	Verdict         string  `json:"verdict"`
	MonthlyCashFlow int64   `json:"monthlyCashFlow"`
	PricePerUnit    int64   `json:"pricePerUnit"`
}

// Financials проценты строкой с двумя знаками, деньги в целых.
type Financials struct {
	MonthlyGrossIncome  int64  `json:"monthlyGrossIncome"`
	AnnualGrossIncome   int64  `json:"annualGrossIncome"`
	OperatingExpenses   int64  `json:"operatingExpenses"`
	NOI                 int64  `json:"noi"`
	MonthlyMortgage     int64  `json:"monthlyMortgage"`
	AnnualDebtService   int64  `json:"annualDebtService"`
	AnnualCashFlow      int64  `json:"annualCashFlow"`
	MonthlyCashFlow     int64  `json:"monthlyCashFlow"`
	CapRate             string `json:"capRate"`
	CashOnCashReturn    string `json:"cashOnCashReturn"`
	ROI                 string `json:"roi"`
	GrossRentMultiplier string `json:"grossRentMultiplier"`
	DownPaymentRequired int64  `json:"downPaymentRequired"`
}

type FinancialAnalysis struct {
	ID             string     `json:"id"`
	Address        string     `json:"address"`
	AIScore        *int       `json:"aiScore"`
	Verdict        *string    `json:"verdict"`
	Financials     Financials `json:"financials"`
	Recommendation string     `json:"recommendation"`
}

type ROIInput struct {
	Price              float64 `json:"price"`
	MonthlyRent        float64 `json:"monthlyRent"`
	DownPaymentPercent string  `json:"downPaymentPercent"`
}

type ROIResult struct {
	Input          ROIInput   `json:"input"`
	Financials     Financials `json:"financials"`
	Recommendation string     `json:"recommendation"`
}

type BriefingDeal struct {
	ID              string  `json:"id"`
	Address         string  `json:"address"`
	AIScore         *int    `json:"aiScore"`
	Verdict         *string `json:"verdict"`
	Price           float64 `json:"price"`
	Units           int     `json:"units"`
	MonthlyCashFlow *int64  `json:"monthlyCashFlow"`
	CapRate         string  `json:"capRate"`
	ROI             string  `json:"roi"`
	ActionItem      string  `json:"actionItem"`
}

type WorkflowStep struct {
	Time   string `json:"time"`
	Action string `json:"action"`
}

type Briefing struct {
	Date       string         `json:"date"`
	TotalDeals int            `json:"totalDeals"`
	TopDeals   []BriefingDeal `json:"topDeals"`
	Workflow   []WorkflowStep `json:"workflow"`
}

type StrategyAnalysis struct {
	Success    bool      `json:"success"`
	Properties int       `json:"properties"`
	AIAnalysis string    `json:"aiAnalysis"`
	Timestamp  time.Time `json:"timestamp"`
}

type Subscriber struct {
	ID               string     `json:"id"`
	StripeCustomerID string     `json:"stripeCustomerId"`
	Status           string     `json:"status"`
	PlanID           string     `json:"planId"`
	CurrentPeriodEnd time.Time  `json:"currentPeriodEnd"`
	CreatedAt        time.Time  `json:"createdAt"`
	CanceledAt       *time.Time `json:"canceledAt,omitempty"`
}

type Subscribers struct {
	Success     bool         `json:"success"`
	TotalActive int          `json:"totalActive"`
	Subscribers []Subscriber `json:"subscribers"`
	Timestamp   time.Time    `json:"timestamp"`
}

type Checkout struct {
	Success     bool   `json:"success"`
	CheckoutURL string `json:"checkoutUrl"`
	SessionID   string `json:"sessionId"`
}

type WebhookReceived struct {
	Received bool `json:"received"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке
	Message string `json:"message"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
