package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"deal_factory/internal/domain"
	"deal_factory/internal/transport/bot/view"
	"deal_factory/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	scannerStatus := view.ScannerStopped
	if h.scanner.IsRunning() {
		scannerStatus = view.ScannerRunning
	}

	stats, err := h.svc.Stats(ctx)
	if err != nil {
		logger(ctx).Error("stats", logx.Error(err))
		return h.sendHTML(ctx, msg.Chat.ID, view.StoreError)
	}

	text := fmt.Sprintf(view.StatusTemplate,
		scannerStatus,
		h.scanner.Interval(),
		view.ZipCodes(h.scanner.ZipCodes()),
		stats.Total,
		stats.HotDeals,
	)

	return h.sendHTML(ctx, msg.Chat.ID, text)
}

func (h *Handler) OnBriefing(ctx *th.Context, msg telego.Message) error {
	briefing, err := h.svc.DailyBriefing(ctx)
	if err != nil {
		logger(ctx).Error("daily briefing", logx.Error(err))
		return h.sendHTML(ctx, msg.Chat.ID, view.StoreError)
	}

	if briefing.TotalDeals == 0 {
		return h.sendHTML(ctx, msg.Chat.ID, view.NoProperties)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Briefing(briefing))
}

func (h *Handler) OnHotDeals(ctx *th.Context, msg telego.Message) error {
	deals, err := h.svc.HotDeals(ctx)
	if err != nil {
		logger(ctx).Error("hot deals", logx.Error(err))
		return h.sendHTML(ctx, msg.Chat.ID, view.StoreError)
	}

	if len(deals) == 0 {
		return h.sendHTML(ctx, msg.Chat.ID, view.NoHotDeals)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.PropertyList(deals, 0))
}

func (h *Handler) OnAnalyze(ctx *th.Context, msg telego.Message) error {
	result, err := h.svc.AnalyzeAll(ctx)
	if errors.Is(err, domain.ErrNoProperties) {
		return h.sendHTML(ctx, msg.Chat.ID, view.NoProperties)
	}
	if err != nil {
		logger(ctx).Error("analyze", logx.Error(err))
		return h.sendHTML(ctx, msg.Chat.ID, view.StoreError)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Analysis(result))
}

func (h *Handler) OnStartScan(ctx *th.Context, msg telego.Message) error {
	if h.scanner.IsRunning() {
		return h.sendHTML(ctx, msg.Chat.ID, view.ScannerAlreadyRunning)
	}

	if err := h.scanner.Start(h.baseCtx); err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.ScannerStartError, err))
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.ScannerStarted)
}

func (h *Handler) OnStopScan(ctx *th.Context, msg telego.Message) error {
	if !h.scanner.IsRunning() {
		return h.sendHTML(ctx, msg.Chat.ID, view.ScannerNotRunning)
	}

	h.scanner.Stop()

	return h.sendHTML(ctx, msg.Chat.ID, view.ScannerStoppedMessage)
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML))
	return err
}

// commandArgs аргументы команды без самой команды.
func commandArgs(text string) []string {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return nil
	}
	return parts[1:]
}
