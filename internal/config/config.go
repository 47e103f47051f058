package config

import (
	"flag"
	"os"
)

// Currency is the fixed 3-letter code every payment intent is denominated in.
const Currency = "BOB"

type Merchant struct {
	Name    string
	Bank    string
	Account string
	TaxID   string
}

type Config struct {
	RunAddress      string
	DataDir         string
	JWTSecret       string
	SheetWebhookURL string
	Merchant        Merchant
}

func New() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "server address and port")
	flag.StringVar(&cfg.DataDir, "d", "./data", "directory for persisted JSON state")
	flag.StringVar(&cfg.JWTSecret, "s", "super-secret-jwt-key", "jwt signing key")
	flag.StringVar(&cfg.SheetWebhookURL, "w", "", "sheet webhook to notify about new orders (empty disables)")
	flag.Parse()

	cfg.RunAddress = getEnv("RUN_ADDRESS", cfg.RunAddress)
	cfg.DataDir = getEnv("DATA_DIR", cfg.DataDir)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.SheetWebhookURL = getEnv("SHEET_WEBHOOK_URL", cfg.SheetWebhookURL)

	cfg.Merchant = Merchant{
		Name:    getEnv("MERCHANT_NAME", "La Comanda"),
		Bank:    getEnv("MERCHANT_BANK", "Banco Unión"),
		Account: getEnv("MERCHANT_ACCOUNT", "10000012345"),
		TaxID:   getEnv("MERCHANT_TAX_ID", "1023456011"),
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
