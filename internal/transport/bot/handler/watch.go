package handler

import (
	"fmt"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"deal_factory/internal/transport/bot/view"
)

// OnWatchZip добавляет индекс в фильтр уведомлений
// Использование: /watchzip 19122
func (h *Handler) OnWatchZip(ctx *th.Context, msg telego.Message) error {
	args := commandArgs(msg.Text)
	if len(args) == 0 {
		return h.sendHTML(ctx, msg.Chat.ID, view.WatchUsage)
	}

	zip := args[0]
	if !view.ValidZip(zip) {
		return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.InvalidZip, zip))
	}

	if !h.scanner.WatchZip(zip) {
		return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.ZipAlreadyWatch, zip))
	}

	return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.ZipAdded, zip))
}

func (h *Handler) OnUnwatchZip(ctx *th.Context, msg telego.Message) error {
	args := commandArgs(msg.Text)
	if len(args) == 0 {
		return h.sendHTML(ctx, msg.Chat.ID, view.UnwatchUsage)
	}

	zip := args[0]
	if !h.scanner.UnwatchZip(zip) {
		return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.ZipNotWatched, zip))
	}

	return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.ZipRemoved, zip))
}

func (h *Handler) OnWatchList(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.WatchList(h.scanner.ZipCodes()))
}

// OnClearWatch после очистки уведомления приходят по всем индексам.
func (h *Handler) OnClearWatch(ctx *th.Context, msg telego.Message) error {
	h.scanner.ClearZipCodes()
	return h.sendHTML(ctx, msg.Chat.ID, view.WatchListCleared)
}

// OnSetWatch заменяет список целиком
// Использование: /setwatch 19121 19122
func (h *Handler) OnSetWatch(ctx *th.Context, msg telego.Message) error {
	args := commandArgs(msg.Text)
	if len(args) == 0 {
		return h.sendHTML(ctx, msg.Chat.ID, view.SetWatchUsage)
	}

	var (
		zips    []string
		invalid []string
	)
	for _, arg := range args {
		if !view.ValidZip(arg) {
			invalid = append(invalid, arg)
			continue
		}
		zips = append(zips, arg)
	}

	if len(zips) == 0 {
		return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.InvalidZip, strings.Join(invalid, ", ")))
	}

	h.scanner.SetZipCodes(zips)

	text := view.WatchList(h.scanner.ZipCodes())
	if len(invalid) > 0 {
		text += "\n" + fmt.Sprintf(view.InvalidZip, strings.Join(invalid, ", "))
	}

	return h.sendHTML(ctx, msg.Chat.ID, text)
}
