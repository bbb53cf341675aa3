package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"deal_factory/internal/domain/entity"
	"deal_factory/internal/transport/bot/view"
	"deal_factory/pkg/logx"
)

const propertiesPagePrefix = "properties_page"

func (h *Handler) OnProperties(ctx *th.Context, msg telego.Message) error {
	text, keyboard, err := h.propertiesPage(ctx, 1)
	if err != nil {
		logger(ctx).Error("list properties", logx.Error(err))
		return h.sendHTML(ctx, msg.Chat.ID, view.StoreError)
	}

	params := tu.Message(tu.ID(msg.Chat.ID), text).WithParseMode(telego.ModeHTML)
	if keyboard != nil {
		params = params.WithReplyMarkup(keyboard)
	}

	_, err = ctx.Bot().SendMessage(ctx, params)
	return err
}

func (h *Handler) OnPropertiesCallback(ctx *th.Context, query telego.CallbackQuery) error {
	_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))

	page, ok := parsePage(query.Data)
	if !ok || query.Message == nil {
		return nil
	}

	text, keyboard, err := h.propertiesPage(ctx, page)
	if err != nil {
		logger(ctx).Error("list properties", logx.Error(err))
		return nil
	}

	_, err = ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
		ChatID:      tu.ID(query.Message.GetChat().ID),
		MessageID:   query.Message.GetMessageID(),
		Text:        text,
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: keyboard,
	})
	return err
}

func (h *Handler) propertiesPage(ctx *th.Context, page int) (string, *telego.InlineKeyboardMarkup, error) {
	all, err := h.svc.List(ctx, entity.PropertyFilter{})
	if err != nil {
		return "", nil, err
	}

	if len(all) == 0 {
		return view.NoProperties, nil, nil
	}

	totalPages := (len(all) + pageSize - 1) / pageSize
	page = min(max(page, 1), totalPages)

	offset := (page - 1) * pageSize
	items := all[offset:min(offset+pageSize, len(all))]

	text := fmt.Sprintf(view.PropertiesPageTemplate, page, totalPages) + view.PropertyList(items, offset)

	return text, paginationKeyboard(page, totalPages), nil
}

func paginationKeyboard(page, totalPages int) *telego.InlineKeyboardMarkup {
	var buttons []telego.InlineKeyboardButton

	if page > 1 {
		buttons = append(buttons, tu.InlineKeyboardButton("⬅️").
			WithCallbackData(fmt.Sprintf("%s:%d", propertiesPagePrefix, page-1)))
	}

	buttons = append(buttons, tu.InlineKeyboardButton(fmt.Sprintf("%d / %d", page, totalPages)).
		WithCallbackData("noop"))

	if page < totalPages {
		buttons = append(buttons, tu.InlineKeyboardButton("➡️").
			WithCallbackData(fmt.Sprintf("%s:%d", propertiesPagePrefix, page+1)))
	}

	return tu.InlineKeyboard(tu.InlineKeyboardRow(buttons...))
}

func parsePage(data string) (int, bool) {
	raw, ok := strings.CutPrefix(data, propertiesPagePrefix+":")
	if !ok {
		return 0, false
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}

	return page, true
}
