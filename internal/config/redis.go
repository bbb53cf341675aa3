package config

import "time"

// Redis необязателен: без адреса нет очереди asynq, журнал событий вебхука в памяти.
type Redis struct {
	Address        string        `env:"REDIS_ADDRESS"`
	Username       string        `env:"REDIS_USERNAME"`
	Password       string        `env:"REDIS_PASSWORD" json:"-"`
	DatabaseNumber int           `env:"REDIS_DB" envDefault:"0"`
	PoolSize       int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	EventTTL       time.Duration `env:"WEBHOOK_EVENT_TTL" envDefault:"72h"`
}

func (r Redis) Enabled() bool {
	return r.Address != ""
}
