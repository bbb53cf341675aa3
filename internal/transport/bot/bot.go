package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"deal_factory/internal/config"
	"deal_factory/internal/domain/service/property"
	"deal_factory/internal/transport/bot/handler"
	"deal_factory/internal/worker"
	"deal_factory/pkg/contextx"
	"deal_factory/pkg/logx"
)

const longPollingTimeout = 60

// Bot админский Telegram-бот: сводки, скоринг и управление сканером.
type Bot struct {
	bot        *telego.Bot
	botHandler *th.BotHandler
}

func New(
	ctx context.Context,
	cfg config.Telegram,
	svc *property.Service,
	scanner *worker.Scanner,
) (*Bot, error) {
	bot, err := telego.NewBot(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	updates, err := bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollingTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(bot, updates)
	if err != nil {
		return nil, fmt.Errorf("th.NewBotHandler: %w", err)
	}

	handler.New(ctx, svc, scanner).RegisterRoutes(botHandler, cfg.AdminID)

	return &Bot{
		bot:        bot,
		botHandler: botHandler,
	}, nil
}

// Run обрабатывает апдейты до отмены контекста.
func (b *Bot) Run(ctx context.Context) error {
	log := contextx.LoggerFromContextOrDefault(ctx)

	go func() {
		if err := b.botHandler.Start(); err != nil {
			log.Error("botHandler.Start", logx.Error(err))
		}
	}()

	log.Info("admin bot started")

	<-ctx.Done()

	if err := b.botHandler.Stop(); err != nil {
		log.Error("botHandler.Stop", logx.Error(err))
	}

	log.Info("admin bot stopped")

	return nil
}
