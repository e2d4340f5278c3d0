package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT" envDefault:"8080"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`

	JWTSecret          string        `env:"JWT_SECRET"`
	AccessTokenExpiry  time.Duration `env:"ACCESS_TOKEN_EXPIRY" envDefault:"15m"`
	RefreshTokenExpiry time.Duration `env:"REFRESH_TOKEN_EXPIRY" envDefault:"720h"`

	IdentityProviderURL string   `env:"IDENTITY_PROVIDER_URL"`
	AllowedEmailDomains []string `env:"ALLOWED_EMAIL_DOMAINS" envSeparator:","`

	StorageBaseURL   string `env:"STORAGE_BASE_URL"`
	StoragePublicURL string `env:"STORAGE_PUBLIC_URL"`

	AssistantAPIKey string `env:"ASSISTANT_API_KEY"`
	AssistantModel  string `env:"ASSISTANT_MODEL" envDefault:"gpt-4o-mini"`

	MailerHost     string `env:"MAILER_HOST"`
	MailerPort     int    `env:"MAILER_PORT" envDefault:"587"`
	MailerLogin    string `env:"MAILER_LOGIN"`
	MailerPassword string `env:"MAILER_PASSWORD"`
	MailerFrom     string `env:"MAILER_FROM"`
	MailerFromName string `env:"MAILER_FROM_NAME" envDefault:"Jackson Multifacet"`

	JobCleanupInterval time.Duration `env:"JOB_CLEANUP_INTERVAL" envDefault:"1h"`
	DraftTTL           time.Duration `env:"DRAFT_TTL" envDefault:"336h"`

	Kafka Kafka
}

type Kafka struct {
	Brokers              []string `env:"KAFKA_BROKERS"`
	ConsumerID           string   `env:"KAFKA_CONSUMER_ID" envDefault:"jackson-api"`
	SubmissionTopic      string   `env:"KAFKA_SUBMISSION_TOPIC" envDefault:"registration.submitted"`
	PaymentVerifiedTopic string   `env:"KAFKA_PAYMENT_VERIFIED_TOPIC" envDefault:"payment.verified"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
