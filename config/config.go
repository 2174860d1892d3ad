package config

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	QueueBackendKafka  = "kafka"
	QueueBackendMemory = "memory"

	AlertChannelKafka = "kafka"
	AlertChannelLog   = "log"

	SignatureModeHMAC = "hmac"
	SignatureModeNone = "none"
)

func New() (*Config, error) {
	var Config Config
	if err := godotenv.Load(".env"); err != nil {
		logrus.Debug("no .env file found, reading configuration from the environment")
	}

	if err := env.Parse(&Config); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	if err := Config.Validate(); err != nil {
		return nil, err
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Queue
	Signature
	Rules
	Alerts
	Log
}

type APP struct {
	PORT              string        `env:"APP_PORT" envDefault:"8080"`
	InvocationTimeout time.Duration `env:"INVOCATION_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DB struct {
	DRIVER     string `env:"DB_DRIVER" envDefault:"postgres"`
	HOST       string `env:"DB_HOST"`
	USER       string `env:"DB_USER"`
	PASSWORD   string `env:"DB_PASSWORD"`
	NAME       string `env:"DB_NAME"`
	PORT       string `env:"DB_PORT"`
	SSLMODE    string `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath string `env:"DB_SQLITE_PATH" envDefault:"webhooks.db"`
}

type Kafka struct {
	Brokers string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`

	ProcessorConsumerGroup string `env:"KAFKA_PROCESSOR_GROUP_ID" envDefault:"webhook-processor"`
	NotifierConsumerGroup  string `env:"KAFKA_NOTIFIER_GROUP_ID" envDefault:"webhook-notifier"`
	RouterConsumerGroup    string `env:"KAFKA_ROUTER_GROUP_ID" envDefault:"webhook-router"`

	ProcessingTopic   string `env:"KAFKA_PROCESSING_TOPIC" envDefault:"webhooks.processing"`
	NotificationTopic string `env:"KAFKA_NOTIFICATION_TOPIC" envDefault:"payments.notifications"`
	EventsTopic       string `env:"KAFKA_EVENTS_TOPIC" envDefault:"payments.events"`
	AlertsTopic       string `env:"KAFKA_ALERTS_TOPIC" envDefault:"payments.alerts"`
	DLQTopic          string `env:"KAFKA_DLQ_TOPIC" envDefault:"webhooks.dlq"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Queue struct {
	Backend           string        `env:"QUEUE_BACKEND" envDefault:"kafka"`
	BatchSize         int           `env:"QUEUE_BATCH_SIZE" envDefault:"10"`
	WaitTime          time.Duration `env:"QUEUE_WAIT_TIME" envDefault:"1s"`
	VisibilityTimeout time.Duration `env:"QUEUE_VISIBILITY_TIMEOUT"`
	MaxReceives       int           `env:"QUEUE_MAX_RECEIVES" envDefault:"5"`
}

type Signature struct {
	Mode            string        `env:"SIGNATURE_MODE" envDefault:"hmac"`
	Secret          string        `env:"SIGNATURE_SECRET"`
	ProviderSecrets string        `env:"SIGNATURE_PROVIDER_SECRETS"`
	Tolerance       time.Duration `env:"SIGNATURE_TOLERANCE" envDefault:"5m"`
}

type Rules struct {
	Path  string `env:"RULES_PATH"`
	Watch bool   `env:"RULES_WATCH" envDefault:"true"`
}

type Alerts struct {
	Channel string `env:"ALERT_CHANNEL" envDefault:"kafka"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Validate rejects combinations the app cannot wire.
func (c *Config) Validate() error {
	switch c.Queue.Backend {
	case QueueBackendKafka, QueueBackendMemory:
	default:
		return fmt.Errorf("unknown QUEUE_BACKEND %q", c.Queue.Backend)
	}
	switch c.Alerts.Channel {
	case AlertChannelKafka, AlertChannelLog:
	default:
		return fmt.Errorf("unknown ALERT_CHANNEL %q", c.Alerts.Channel)
	}
	switch c.Signature.Mode {
	case SignatureModeHMAC:
		if c.Signature.Secret == "" && c.Signature.ProviderSecrets == "" {
			return fmt.Errorf("SIGNATURE_SECRET or SIGNATURE_PROVIDER_SECRETS is required in hmac mode")
		}
	case SignatureModeNone:
	default:
		return fmt.Errorf("unknown SIGNATURE_MODE %q", c.Signature.Mode)
	}
	if c.Queue.BatchSize <= 0 {
		return fmt.Errorf("QUEUE_BATCH_SIZE must be positive")
	}
	if c.APP.InvocationTimeout <= 0 {
		return fmt.Errorf("INVOCATION_TIMEOUT must be positive")
	}
	return nil
}

// GetVisibilityTimeout falls back to six invocation budgets when unset.
func (q Queue) GetVisibilityTimeout(invocation time.Duration) time.Duration {
	if q.VisibilityTimeout > 0 {
		return q.VisibilityTimeout
	}
	return 6 * invocation
}

// Secrets parses SIGNATURE_PROVIDER_SECRETS ("stripe=abc,adyen=def").
func (s Signature) Secrets() map[string]string {
	secrets := make(map[string]string)
	for _, pair := range strings.Split(s.ProviderSecrets, ",") {
		provider, secret, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || provider == "" || secret == "" {
			continue
		}
		secrets[strings.TrimSpace(provider)] = strings.TrimSpace(secret)
	}
	return secrets
}

func (k Kafka) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

// WithDefaults fills zero values with 5 attempts, 100ms base and 10s cap.
func (r RetryConfig) WithDefaults() RetryConfig {
	if r.MaxAttempts == 0 {
		r.MaxAttempts = 5
	}
	if r.BaseDelay == 0 {
		r.BaseDelay = 100 * time.Millisecond
	}
	if r.MaxDelay == 0 {
		r.MaxDelay = 10 * time.Second
	}
	return r
}

// Backoff returns 2^attempt * BaseDelay capped at MaxDelay, with +/-15% jitter when enabled.
func (r RetryConfig) Backoff(attempt int) time.Duration {
	delay := r.MaxDelay
	if raw := math.Pow(2, float64(attempt)) * float64(r.BaseDelay); raw < float64(r.MaxDelay) {
		delay = time.Duration(raw)
	}

	if r.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}
