package initializers

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Kariqs/amana-storefront/cart"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type MailConfig struct {
	From         string
	Password     string
	Host         string
	Addr         string
	TemplatePath string
}

func (m MailConfig) Enabled() bool {
	return m.From != "" && m.Addr != ""
}

type Config struct {
	Port                   string
	BackendURL             string
	BackendTimeout         time.Duration
	StoreDriver            string
	RedisURL               string
	DBURL                  string
	SessionTTL             time.Duration
	MergePolicy            cart.MergePolicy
	AllowedOrigins         []string
	Currency               string
	DeliveryFee            float64
	FrontendURL            string
	S3Bucket               string
	Mail                   MailConfig
	ProductRefreshInterval time.Duration
}

// LoadEnv reads .env into the process environment. A missing file is fine.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file loaded, using process environment")
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// LoadConfig builds the service configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		BackendURL:  strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:4000"), "/"),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", "redis")),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		DBURL:       getEnv("DB_URL", ""),
		Currency:    getEnv("CURRENCY", "Rs."),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		S3Bucket:    getEnv("S3_BUCKET", ""),
		Mail: MailConfig{
			From:         getEnv("FROM_EMAIL", ""),
			Password:     getEnv("FROM_EMAIL_PASSWORD", ""),
			Host:         getEnv("FROM_EMAIL_SMTP", ""),
			Addr:         getEnv("SMTP_ADDRESS", ""),
			TemplatePath: getEnv("ORDER_EMAIL_TEMPLATE", "templates/order_confirmation.html"),
		},
	}

	var err error
	if cfg.BackendTimeout, err = getDuration("BACKEND_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 30*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.ProductRefreshInterval, err = getDuration("PRODUCT_REFRESH_INTERVAL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.MergePolicy, err = cart.ParseMergePolicy(getEnv("CART_MERGE_POLICY", "")); err != nil {
		return nil, fmt.Errorf("CART_MERGE_POLICY: %w", err)
	}
	if cfg.DeliveryFee, err = strconv.ParseFloat(getEnv("DELIVERY_FEE", "10"), 64); err != nil || cfg.DeliveryFee < 0 {
		return nil, fmt.Errorf("DELIVERY_FEE: invalid value %q", os.Getenv("DELIVERY_FEE"))
	}

	for _, origin := range strings.Split(getEnv("ALLOWED_ORIGINS", cfg.FrontendURL), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	switch cfg.StoreDriver {
	case "redis":
	case "mysql":
		if cfg.DBURL == "" {
			return nil, fmt.Errorf("DB_URL is required when STORE_DRIVER=mysql")
		}
	default:
		return nil, fmt.Errorf("STORE_DRIVER: unknown driver %q", cfg.StoreDriver)
	}
	return cfg, nil
}
