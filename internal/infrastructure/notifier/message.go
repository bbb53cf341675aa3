package notifier

import (
	"fmt"
	"html"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"deal_factory/internal/domain/entity"
)

// DealMessage HTML-текст уведомления о сделке.
func DealMessage(deal entity.Property) string {
	p := message.NewPrinter(language.English)

	var sb strings.Builder

	sb.WriteString("🔥 <b>HOT DEAL FOUND!</b>\n\n")
	sb.WriteString(fmt.Sprintf("🏠 <b>Address:</b> %s\n", html.EscapeString(deal.Address)))
	sb.WriteString(p.Sprintf("💰 <b>Price:</b> $%d\n", int64(deal.Price)))
	sb.WriteString(p.Sprintf("🏢 <b>Units:</b> %d\n", deal.Units))
	sb.WriteString(p.Sprintf("📅 <b>Days on market:</b> %d\n", deal.DaysOnMarket))

	if deal.Analysis != nil {
		sb.WriteString(p.Sprintf("📊 <b>Score:</b> %d (%s)\n", deal.Analysis.Score, deal.Analysis.Verdict.Label()))
		sb.WriteString(p.Sprintf("💵 <b>Cash flow:</b> $%d/month\n", int64(deal.Analysis.MonthlyCashFlow)))
	}

	if deal.OpportunityZone {
		sb.WriteString("✅ Opportunity Zone\n")
	}

	if len(deal.Images) > 0 {
		sb.WriteString(fmt.Sprintf("\n🔗 <a href=\"%s\">Photos</a>", html.EscapeString(deal.Images[0])))
	}

	return sb.String()
}
