package config

type Stripe struct {
	SecretKey     string `env:"STRIPE_SECRET_KEY" json:"-"`
	PriceID       string `env:"STRIPE_PRICE_ID"`
	WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET" json:"-"`
	SuccessURL    string `env:"STRIPE_SUCCESS_URL" envDefault:"https://yourdomain.com/success?session_id={CHECKOUT_SESSION_ID}"`
	CancelURL     string `env:"STRIPE_CANCEL_URL" envDefault:"https://yourdomain.com/cancel"`
}
