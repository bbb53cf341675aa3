package entity

import "time"

// ScoredDeal краткая запись по объекту после скоринга.
type ScoredDeal struct {
	ID      string `json:"id"`
	Address string `json:"address"`
	DealScore
}

// AnalysisResult итог пакетного скоринга.
type AnalysisResult struct {
	Analyzed int          `json:"analyzed"`
	TopDeals []ScoredDeal `json:"topDeals"`
	All      []ScoredDeal `json:"allResults"`
}

// BriefingDeal объект в ежедневной сводке.
type BriefingDeal struct {
	Property   Property   `json:"property"`
	Financials Financials `json:"financials"`
	ActionItem string     `json:"actionItem"`
}

// WorkflowStep шаг ежедневного 60-минутного процесса.
type WorkflowStep struct {
	At     string `json:"at"`
	Action string `json:"action"`
}

// Briefing ежедневная сводка по лучшим сделкам.
type Briefing struct {
	Date       time.Time      `json:"date"`
	TotalDeals int            `json:"totalDeals"`
	TopDeals   []BriefingDeal `json:"topDeals"`
	Workflow   []WorkflowStep `json:"workflow"`
}

// StrategyAnalysis ответ генеративной модели по топ-сделкам.
type StrategyAnalysis struct {
	Properties int    `json:"properties"`
	Text       string `json:"aiAnalysis"`
}
