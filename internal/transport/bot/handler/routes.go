package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"deal_factory/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	adminGroup.HandleMessage(h.OnStatus, th.CommandEqual("status"))
	adminGroup.HandleMessage(h.OnBriefing, th.CommandEqual("briefing"))
	adminGroup.HandleMessage(h.OnHotDeals, th.CommandEqual("hotdeals"))
	adminGroup.HandleMessage(h.OnProperties, th.CommandEqual("properties"))
	adminGroup.HandleMessage(h.OnAnalyze, th.CommandEqual("analyze"))

	adminGroup.HandleMessage(h.OnStartScan, th.CommandEqual("startscan"))
	adminGroup.HandleMessage(h.OnStopScan, th.CommandEqual("stopscan"))

	adminGroup.HandleMessage(h.OnWatchZip, th.CommandEqual("watchzip"))
	adminGroup.HandleMessage(h.OnUnwatchZip, th.CommandEqual("unwatchzip"))
	adminGroup.HandleMessage(h.OnWatchList, th.CommandEqual("watchlist"))
	adminGroup.HandleMessage(h.OnClearWatch, th.CommandEqual("clearwatch"))
	adminGroup.HandleMessage(h.OnSetWatch, th.CommandEqual("setwatch"))

	// пагинация списка объектов
	cbGroup := bh.Group(th.AnyCallbackQuery())
	cbGroup.Use(middleware.AdminOnly(adminID))

	cbGroup.HandleCallbackQuery(h.OnPropertiesCallback, th.CallbackDataPrefix(propertiesPagePrefix))
}
