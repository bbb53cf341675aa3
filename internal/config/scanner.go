package config

import "time"

type Scanner struct {
	Interval  time.Duration `env:"SCANNER_INTERVAL" envDefault:"15m"`
	AutoStart bool          `env:"SCANNER_AUTOSTART" envDefault:"true"`
	ZipCodes  []string      `env:"SCANNER_ZIP_CODES" envSeparator:","`
}
