package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Admin    AdminConfig
	Site     SiteConfig
	Checkout CheckoutConfig
	Observ   ObservabilityConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// AdminConfig holds the back-office credential pair. A plain string compare
// against these values is the whole authentication story; hardening is out of
// scope.
type AdminConfig struct {
	Email    string
	Password string
}

// SiteConfig holds the branding defaults a fresh session starts with
type SiteConfig struct {
	Name           string
	LogoURL        string
	PrimaryColor   string
	SecondaryColor string
}

type CheckoutConfig struct {
	// ConfirmationSeconds is how long the order-confirmation view counts
	// down before redirecting home
	ConfirmationSeconds int
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

func Load() *Config {
	_ = godotenv.Load()

	confirmationSeconds, _ := strconv.Atoi(getEnv("CONFIRMATION_SECONDS", "7"))

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "admin@gebolos.com"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		Site: SiteConfig{
			Name:           getEnv("SITE_NAME", "Ge Bolos Gourmet"),
			LogoURL:        getEnv("SITE_LOGO_URL", "/849297ce-29f4-4481-adcb-9154ffa3b5f3.webp"),
			PrimaryColor:   getEnv("SITE_PRIMARY_COLOR", "#8B4513"),
			SecondaryColor: getEnv("SITE_SECONDARY_COLOR", "#D2691E"),
		},
		Checkout: CheckoutConfig{
			ConfirmationSeconds: confirmationSeconds,
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
