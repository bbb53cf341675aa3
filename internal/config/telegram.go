package config

// Telegram без токена бот и уведомления не запускаются.
type Telegram struct {
	BotToken string `env:"TG_BOT_TOKEN" json:"-"`
	ChatID   int64  `env:"TG_CHAT_ID"`
	AdminID  int64  `env:"TG_ADMIN_ID"`
}

func (t Telegram) Enabled() bool {
	return t.BotToken != ""
}
