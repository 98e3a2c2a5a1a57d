package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, rail secrets, etc.)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Payment PaymentConfig
	Chapa   ChapaConfig
	Card    CardConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:19006,http://localhost:8081"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Africa/Addis_Ababa"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

type PaymentConfig struct {
	Mode             string        `envconfig:"PAYMENT_MODE" default:"test"`
	ReturnURL        string        `envconfig:"PAYMENT_RETURN_URL" required:"true"`
	CallbackURL      string        `envconfig:"PAYMENT_CALLBACK_URL" required:"true"`
	CloseDelay       time.Duration `envconfig:"PAYMENT_CLOSE_DELAY" default:"2s"`
	OperationTimeout time.Duration `envconfig:"PAYMENT_OPERATION_TIMEOUT" default:"30s"`
	TestPhone        string        `envconfig:"PAYMENT_TEST_PHONE" default:"0912345678"`
	TestFullName     string        `envconfig:"PAYMENT_TEST_FULL_NAME" default:"Test User"`
}

type ChapaConfig struct {
	BaseURL            string        `envconfig:"CHAPA_BASE_URL" default:"https://api.chapa.co"`
	TestSecretKey      string        `envconfig:"CHAPA_TEST_SECRET_KEY"`
	LiveSecretKey      string        `envconfig:"CHAPA_LIVE_SECRET_KEY"`
	SettlementCurrency string        `envconfig:"CHAPA_SETTLEMENT_CURRENCY" default:"ETB"`
	ExchangeRate       string        `envconfig:"CHAPA_EXCHANGE_RATE" default:"120"`
	TestAmount         string        `envconfig:"CHAPA_TEST_AMOUNT" default:"100.00"`
	PayerEmail         string        `envconfig:"CHAPA_PAYER_EMAIL" default:"user@gmail.com"`
	HTTPTimeout        time.Duration `envconfig:"CHAPA_HTTP_TIMEOUT" default:"30s"`
	ReferenceTTL       time.Duration `envconfig:"CHAPA_REFERENCE_TTL" default:"1h"`
}

type CardConfig struct {
	Latency       time.Duration `envconfig:"CARD_LATENCY" default:"2s"`
	DeclineNumber string        `envconfig:"CARD_DECLINE_NUMBER" default:"4000000000000002"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Payment.Mode != "test" && cfg.Payment.Mode != "live" {
		return Config{}, fmt.Errorf("invalid PAYMENT_MODE %q: want test or live", cfg.Payment.Mode)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:8081"},
			AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Africa/Addis_Ababa",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
		Payment: PaymentConfig{
			Mode:             "test",
			ReturnURL:        "https://checkout.test/payment-complete",
			CallbackURL:      "https://checkout.test/webhooks/chapa",
			CloseDelay:       10 * time.Millisecond,
			OperationTimeout: time.Second,
			TestPhone:        "0912345678",
			TestFullName:     "Test User",
		},
		Chapa: ChapaConfig{
			BaseURL:            "http://127.0.0.1:0",
			TestSecretKey:      "CHASECK_TEST-unit",
			SettlementCurrency: "ETB",
			ExchangeRate:       "120",
			TestAmount:         "100.00",
			PayerEmail:         "user@gmail.com",
			HTTPTimeout:        time.Second,
			ReferenceTTL:       time.Hour,
		},
		Card: CardConfig{
			Latency:       10 * time.Millisecond,
			DeclineNumber: "4000000000000002",
		},
	}
}
