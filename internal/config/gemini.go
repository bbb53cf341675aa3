package config

type Gemini struct {
	APIKey      string  `env:"GEMINI_API_KEY" json:"-"`
	Model       string  `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	Temperature float32 `env:"GEMINI_TEMPERATURE" envDefault:"0.7"`
}
