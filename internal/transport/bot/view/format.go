package view

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"deal_factory/internal/domain/entity"
	"deal_factory/internal/domain/service/financial"
)

// PropertyLine строка объекта в списке, нумерация с единицы.
func PropertyLine(n int, p entity.Property) string {
	pr := message.NewPrinter(language.English)

	score := "—"
	if p.Analysis != nil {
		score = strconv.Itoa(p.Analysis.Score)
	}

	return fmt.Sprintf(PropertyItemTemplate, n, html.EscapeString(p.Address), pr.Sprintf("$%d", int64(p.Price)), score)
}

func PropertyList(properties []entity.Property, offset int) string {
	var sb strings.Builder
	for i, p := range properties {
		sb.WriteString(PropertyLine(offset+i+1, p))
	}
	return sb.String()
}

func Analysis(result entity.AnalysisResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(AnalyzeTemplate, result.Analyzed))
	for i, d := range result.TopDeals {
		sb.WriteString(fmt.Sprintf("%d. %s — %d (%s)\n", i+1, html.EscapeString(d.Address), d.Score, d.Verdict.Label()))
	}

	return sb.String()
}

func Briefing(b entity.Briefing) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(BriefingTemplate, b.Date.Format("2006-01-02"), b.TotalDeals))

	for i, d := range b.TopDeals {
		sb.WriteString(fmt.Sprintf("%d. <b>%s</b>\n   cap %s · ROI %s\n   %s\n\n",
			i+1,
			html.EscapeString(d.Property.Address),
			financial.Percent(d.Financials.CapRate),
			financial.Percent(d.Financials.ROI),
			d.ActionItem,
		))
	}

	for _, step := range b.Workflow {
		sb.WriteString(fmt.Sprintf("• %s: %s\n", step.At, step.Action))
	}

	return sb.String()
}

func ZipCodes(zips []string) string {
	if len(zips) == 0 {
		return AllZipCodes
	}
	return strings.Join(zips, ", ")
}

func WatchList(zips []string) string {
	if len(zips) == 0 {
		return WatchListEmpty
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(WatchListHeader, len(zips)))
	for i, z := range zips {
		sb.WriteString(fmt.Sprintf("%d. <code>%s</code>\n", i+1, z))
	}

	return sb.String()
}

// ValidZip пятизначный почтовый индекс США.
func ValidZip(s string) bool {
	if len(s) != 5 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
