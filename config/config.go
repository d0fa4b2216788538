package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"
)

// Config is everything the service reads from the environment. Processor
// credentials are optional — their absence selects the simulated checkout
// path rather than failing boot.
type Config struct {
	Port           string
	BaseURL        string
	AllowedOrigins string

	StoreBackend string // "memory", "file" or "postgres"
	StoreFile    string
	DatabaseURL  string

	StripeSecretKey string
	StripeAPIBase   string
	Currency        string
	NoteLimit       int
	CheckoutTimeout time.Duration

	AdminAPIKey string

	BackupBucket   string
	BackupInterval time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:            getenv("PORT", "8080"),
		BaseURL:         strings.TrimRight(getenv("BASE_URL", "http://localhost:8080"), "/"),
		AllowedOrigins:  getenv("ALLOWED_ORIGINS", "http://localhost:3000"),
		StoreBackend:    getenv("STORE_BACKEND", "file"),
		StoreFile:       getenv("STORE_FILE", "data/store.json"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		StripeAPIBase:   getenv("STRIPE_API_BASE", "https://api.stripe.com"),
		Currency:        strings.ToLower(getenv("TIP_CURRENCY", "usd")),
		AdminAPIKey:     os.Getenv("ADMIN_API_KEY"),
		BackupBucket:    os.Getenv("BACKUP_BUCKET"),
	}

	if _, err := currency.ParseISO(strings.ToUpper(cfg.Currency)); err != nil {
		return nil, fmt.Errorf("TIP_CURRENCY %q is not a valid ISO 4217 code: %w", cfg.Currency, err)
	}

	noteLimit, err := getenvInt("CHECKOUT_NOTE_LIMIT", 100)
	if err != nil {
		return nil, err
	}
	cfg.NoteLimit = noteLimit

	timeoutSecs, err := getenvInt("CHECKOUT_TIMEOUT_SECONDS", 15)
	if err != nil {
		return nil, err
	}
	cfg.CheckoutTimeout = time.Duration(timeoutSecs) * time.Second

	backupMins, err := getenvInt("BACKUP_INTERVAL_MINUTES", 60)
	if err != nil {
		return nil, err
	}
	cfg.BackupInterval = time.Duration(backupMins) * time.Minute

	switch cfg.StoreBackend {
	case "memory", "file":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("STORE_BACKEND=postgres requires DATABASE_URL")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q (want memory, file or postgres)", cfg.StoreBackend)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}
