package notifier

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"deal_factory/internal/domain/entity"
	"deal_factory/pkg/logx"
)

//go:generate moq -rm -out sender_mock.gen.go . sender:SenderMock
type sender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

// TelegramBot рассылает горячие сделки в чат.
type TelegramBot struct {
	bot    sender
	chatID int64
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// Run отправляет сделки из канала, пока он открыт.
func (b *TelegramBot) Run(ctx context.Context, deals <-chan entity.Property) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case deal, ok := <-deals:
			if !ok {
				return nil
			}
			if err := b.SendDeal(ctx, deal); err != nil {
				logger(ctx).Error("failed to send deal", logx.FieldPropertyID, deal.ID, logx.Error(err))
			}
		}
	}
}

func (b *TelegramBot) SendDeal(ctx context.Context, deal entity.Property) error {
	msg := tu.Message(
		tu.ID(b.chatID),
		DealMessage(deal),
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// SendText отправляет простое текстовое сообщение.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	_, err := b.bot.SendMessage(ctx, tu.Message(tu.ID(b.chatID), text))
	return err
}
