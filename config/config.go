// Package config loads the service configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full environment-driven configuration.
type Config struct {
	Port     string `envconfig:"PORT" default:"8000"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	MongoURI      string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"bakeshop"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	SendgridAPIKey string `envconfig:"SENDGRID_API_KEY"`
	EmailSender    string `envconfig:"EMAIL_SENDER"`
	BaseURL        string `envconfig:"BASE_URL" default:"http://localhost:8000"`

	// WhatsAppNumber receives the order-summary handoff.
	WhatsAppNumber string `envconfig:"WHATSAPP_NUMBER" default:"918105652158"`
	// ContactRelayURL is the hosted endpoint the contact form is relayed
	// to, fire-and-forget. Empty disables the relay.
	ContactRelayURL string `envconfig:"CONTACT_RELAY_URL"`
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
