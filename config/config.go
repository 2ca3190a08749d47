package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage Configuration
	Mongo MongoConfig

	// Chain Configuration
	Mango MangoConfig

	// Provider Configuration
	Mail   MailConfig
	Twilio TwilioConfig
	Notifi NotifiConfig

	// Background Watcher Configuration
	Watcher WatcherConfig

	// Announcement Configuration
	Updates UpdatesConfig
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"3000"`
	Mode string `env:"GIN_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// MongoConfig is the configuration for the document store.
// URI wins when set; otherwise the connection string is assembled from
// the user/password/cluster parts the way the hosted cluster expects.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASS"`
	Cluster  string `env:"DB_CLUSTER"`
	DBName   string `env:"DB" envDefault:"mango"`

	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
}

// ConnectionString returns the effective mongo connection string.
func (c MongoConfig) ConnectionString() string {
	if c.URI != "" {
		return c.URI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s.fqb1s.mongodb.net/%s?retryWrites=true&w=majority",
		c.User, c.Password, c.Cluster, c.DBName)
}

// MangoConfig is the configuration for the chain client.
type MangoConfig struct {
	Cluster     string        `env:"CLUSTER" envDefault:"mainnet"`
	Group       string        `env:"GROUP" envDefault:"mainnet.1"`
	EndpointURL string        `env:"ENDPOINT_URL"`
	Timeout     time.Duration `env:"MANGO_TIMEOUT" envDefault:"30s"`
}

// MailConfig is the configuration for the transactional mail provider.
type MailConfig struct {
	User      string `env:"MAIL_USER"`
	Domain    string `env:"MAIL_DOMAIN" envDefault:"mango.markets"`
	SMTPHost  string `env:"MAIL_SMTP_HOST" envDefault:"in-v3.mailjet.com"`
	SMTPPort  int    `env:"MAIL_SMTP_PORT" envDefault:"587"`
	APIKey    string `env:"MAILJET_KEY"`
	APISecret string `env:"MAILJET_SECRET"`
	Subject   string `env:"MAIL_SUBJECT" envDefault:"Mango Alerts"`
}

// From returns the sender address for outgoing alert mail.
func (c MailConfig) From() string {
	return fmt.Sprintf("%s@%s", c.User, c.Domain)
}

// TwilioConfig is the configuration for the optional SMS provider.
type TwilioConfig struct {
	AccountSID string `env:"TWILIO_SID"`
	AuthToken  string `env:"TWILIO_TOKEN"`
	FromNumber string `env:"TWILIO_FROM"`
}

// Enabled reports whether SMS alerts can be dispatched.
func (c TwilioConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

// NotifiConfig is the configuration for the optional push platform.
type NotifiConfig struct {
	SID     string `env:"NOTIFI_SID"`
	Secret  string `env:"NOTIFI_SECRET"`
	BaseURL string `env:"NOTIFI_BASE_URL" envDefault:"https://api.notifi.network"`
}

// Enabled reports whether push alerts can be dispatched.
func (c NotifiConfig) Enabled() bool {
	return c.SID != "" && c.Secret != ""
}

// WatcherConfig is the configuration for the background poll loop.
type WatcherConfig struct {
	Interval        time.Duration `env:"WATCH_INTERVAL" envDefault:"1m"`
	WorkerLimit     int           `env:"WATCH_WORKER_LIMIT" envDefault:"8"`
	EvaluateTimeout time.Duration `env:"WATCH_EVALUATE_TIMEOUT" envDefault:"30s"`

	// TriggerPolicy decides what happens to an alert after a successful
	// dispatch: "close" keeps the record with open=false, "delete"
	// removes it.
	TriggerPolicy string `env:"ALERT_TRIGGER_POLICY" envDefault:"close"`
}

// UpdatesConfig is the configuration for announcement mutations.
type UpdatesConfig struct {
	Password string `env:"UPDATE_PASSWORD"`
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Mongo.URI == "" && (cfg.Mongo.User == "" || cfg.Mongo.Cluster == "") {
		return fmt.Errorf("either MONGO_URI or DB_USER/DB_PASS/DB_CLUSTER is required")
	}
	if cfg.Updates.Password == "" {
		return fmt.Errorf("UPDATE_PASSWORD is required")
	}
	if cfg.Mail.APIKey == "" || cfg.Mail.APISecret == "" {
		return fmt.Errorf("MAILJET_KEY and MAILJET_SECRET are required")
	}
	switch cfg.Watcher.TriggerPolicy {
	case "close", "delete":
	default:
		return fmt.Errorf("ALERT_TRIGGER_POLICY must be \"close\" or \"delete\", got %q", cfg.Watcher.TriggerPolicy)
	}
	if cfg.Watcher.WorkerLimit <= 0 {
		return fmt.Errorf("WATCH_WORKER_LIMIT must be positive")
	}
	return nil
}
