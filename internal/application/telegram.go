package application

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"deal_factory/internal/config"
	"deal_factory/internal/domain/entity"
	"deal_factory/internal/domain/service/property"
	"deal_factory/internal/infrastructure/notifier"
	"deal_factory/internal/transport/bot"
	"deal_factory/internal/worker"
)

const dealsBuffer = 100

// runTelegram сканер пишет горячие сделки в канал, нотификатор отправляет их в чат.
func runTelegram(ctx context.Context, g *errgroup.Group, cfg config.Config, svc *property.Service) error {
	deals := make(chan entity.Property, dealsBuffer)

	scanner := worker.NewScanner(svc, deals, cfg.Scanner.Interval)
	scanner.SetZipCodes(cfg.Scanner.ZipCodes)

	alertBot, err := notifier.NewTelegramBot(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		return fmt.Errorf("notifier.NewTelegramBot: %w", err)
	}

	g.Go(func() error {
		if err := alertBot.Run(ctx, deals); err != nil && ctx.Err() == nil {
			return fmt.Errorf("alertBot.Run: %w", err)
		}
		return nil
	})

	if cfg.Scanner.AutoStart {
		if err = scanner.Start(ctx); err != nil {
			return fmt.Errorf("scanner.Start: %w", err)
		}
	}

	g.Go(func() error {
		<-ctx.Done()
		scanner.Stop()
		return nil
	})

	if cfg.Telegram.AdminID == 0 {
		logger(ctx).Warn("telegram admin id is empty, admin bot disabled")
		return nil
	}

	adminBot, err := bot.New(ctx, cfg.Telegram, svc, scanner)
	if err != nil {
		return fmt.Errorf("bot.New: %w", err)
	}

	g.Go(func() error {
		return adminBot.Run(ctx)
	})

	return nil
}
