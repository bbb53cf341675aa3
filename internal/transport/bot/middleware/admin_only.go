package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"deal_factory/pkg/contextx"
)

// AdminOnly пропускает дальше только апдейты от adminID, остальные молча глотает.
func AdminOnly(adminID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		userID, ok := senderID(update)
		if !ok {
			return nil
		}

		if userID != adminID {
			contextx.LoggerFromContextOrDefault(ctx).Warn("bot access denied", "user-id", userID)

			return nil
		}

		return ctx.Next(update)
	}
}

func senderID(update telego.Update) (int64, bool) {
	switch {
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From.ID, true
	case update.CallbackQuery != nil:
		return update.CallbackQuery.From.ID, true
	default:
		return 0, false
	}
}
