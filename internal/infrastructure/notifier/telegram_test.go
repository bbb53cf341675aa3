package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"deal_factory/internal/domain/entity"
	"deal_factory/internal/domain/value"
)

func testDeal() entity.Property {
	return entity.Property{
		ID:              "d1",
		Address:         "2145 N Broad St, Philadelphia, PA 19122",
		Price:           385000,
		Units:           4,
		DaysOnMarket:    210,
		OpportunityZone: true,
		Images:          []string{"https://example.com/property2.jpg"},
		Analysis:        &entity.DealScore{Score: 100, Verdict: value.VerdictHotDeal, MonthlyCashFlow: 560},
	}
}

func TestDealMessage(t *testing.T) {
	r := require.New(t)

	text := DealMessage(testDeal())
	r.Contains(text, "$385,000")
	r.Contains(text, "<b>Score:</b> 100 (🔥 HOT DEAL)")
	r.Contains(text, "$560/month")
	r.Contains(text, "Opportunity Zone")
	r.Contains(text, `href="https://example.com/property2.jpg"`)

	plain := testDeal()
	plain.Address = "<script>"
	plain.Analysis = nil
	plain.OpportunityZone = false
	plain.Images = nil

	text = DealMessage(plain)
	r.Contains(text, "&lt;script&gt;")
	r.NotContains(text, "Score")
	r.NotContains(text, "Opportunity Zone")
	r.NotContains(text, "href")
}

func TestTelegramBot_Run(t *testing.T) {
	r := require.New(t)

	mock := &SenderMock{
		SendMessageFunc: func(_ context.Context, params *telego.SendMessageParams) (*telego.Message, error) {
			if params.Text == "" {
				return nil, errors.New("empty text")
			}
			return &telego.Message{}, nil
		},
	}
	bot := &TelegramBot{bot: mock, chatID: 42}

	deals := make(chan entity.Property, 2)
	deals <- testDeal()
	deals <- testDeal()
	close(deals)

	r.NoError(bot.Run(context.Background(), deals))

	calls := mock.SendMessageCalls()
	r.Len(calls, 2)
	r.Equal(int64(42), calls[0].Params.ChatID.ID)
	r.Equal(telego.ModeHTML, calls[0].Params.ParseMode)
}

func TestTelegramBot_RunCanceled(t *testing.T) {
	bot := &TelegramBot{bot: &SenderMock{}, chatID: 42}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, bot.Run(ctx, make(chan entity.Property)), context.DeadlineExceeded)
}
