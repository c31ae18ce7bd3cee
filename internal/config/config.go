// Package config loads service configuration from flags, the environment
// (JOBMATCH_ prefix, .env preloaded) and an optional jobmatch.yaml.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/metinatakli/jobmatch/internal/secrets"
	"github.com/spf13/viper"
)

const EnvPrefix = "JOBMATCH"

type Config struct {
	Port     int            `mapstructure:"port"`
	Env      string         `mapstructure:"env"`
	DB       DBConfig       `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Stripe   StripeConfig   `mapstructure:"stripe"`
	Paystack PaystackConfig `mapstructure:"paystack"`
	S3       S3Config       `mapstructure:"s3"`
	Otel     OtelConfig     `mapstructure:"otel"`
	Matches  MatchesConfig  `mapstructure:"matches"`
}

type DBConfig struct {
	DSN          string        `mapstructure:"dsn"`
	MaxOpenConns int           `mapstructure:"max-open-conns"`
	MaxIdleTime  time.Duration `mapstructure:"max-idle-time"`
}

type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	MaxOpenConns int           `mapstructure:"max-open-conns"`
	MaxIdleConns int           `mapstructure:"max-idle-conns"`
	MaxIdleTime  time.Duration `mapstructure:"max-idle-time"`
}

type SMTPConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	PasswordFile string `mapstructure:"password-file"`
	Sender       string `mapstructure:"sender"`
}

type StripeConfig struct {
	SecretKey         string `mapstructure:"secret-key"`
	SecretKeyFile     string `mapstructure:"secret-key-file"`
	WebhookSecret     string `mapstructure:"webhook-secret"`
	WebhookSecretFile string `mapstructure:"webhook-secret-file"`
	SuccessURL        string `mapstructure:"success-url"`
	FailureURL        string `mapstructure:"failure-url"`
}

type PaystackConfig struct {
	BaseURL       string `mapstructure:"base-url"`
	SecretKey     string `mapstructure:"secret-key"`
	SecretKeyFile string `mapstructure:"secret-key-file"`
	CallbackURL   string `mapstructure:"callback-url"`
	// PlanCode turns subscription checkouts into recurring Paystack plans.
	PlanCode      string `mapstructure:"plan-code"`
}

type S3Config struct {
	Endpoint      string `mapstructure:"endpoint"`
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	AccessKey     string `mapstructure:"access-key"`
	SecretKey     string `mapstructure:"secret-key"`
	SecretKeyFile string `mapstructure:"secret-key-file"`
}

type OtelConfig struct {
	CollectorURL string `mapstructure:"collector-url"`
}

type MatchesConfig struct {
	FreeLimit int `mapstructure:"free-limit"`
}

// SetDefaults registers every key so that environment variables are picked
// up by Unmarshal even when no config file mentions them.
func SetDefaults(v *viper.Viper) {
	defaults := map[string]any{
		"port": 3000,
		"env":  "dev",

		"db.dsn":            "",
		"db.max-open-conns": 25,
		"db.max-idle-time":  15 * time.Minute,

		"redis.url":            "localhost:6379",
		"redis.max-open-conns": 25,
		"redis.max-idle-conns": 10,
		"redis.max-idle-time":  2 * time.Minute,

		"smtp.host":          "sandbox.smtp.mailtrap.io",
		"smtp.port":          2525,
		"smtp.username":      "",
		"smtp.password":      "",
		"smtp.password-file": "",
		"smtp.sender":        "JobMatch <no-reply@jobmatch.local>",

		"stripe.secret-key":          "",
		"stripe.secret-key-file":     "",
		"stripe.webhook-secret":      "",
		"stripe.webhook-secret-file": "",
		"stripe.success-url":         "http://localhost:5173/payment/success",
		"stripe.failure-url":         "http://localhost:5173/payment/cancelled",

		"paystack.base-url":        "https://api.paystack.co",
		"paystack.secret-key":      "",
		"paystack.secret-key-file": "",
		"paystack.callback-url":    "http://localhost:5173/payment/success",
		"paystack.plan-code":       "",

		"s3.endpoint":        "",
		"s3.region":          "auto",
		"s3.bucket":          "",
		"s3.access-key":      "",
		"s3.secret-key":      "",
		"s3.secret-key-file": "",

		"otel.collector-url": "",

		"matches.free-limit": 3,
	}

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// New returns a viper instance reading JOBMATCH_* variables, with dashes and
// dots in keys mapped to underscores (db.max-open-conns is
// JOBMATCH_DB_MAX_OPEN_CONNS).
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	return v
}

// Load unmarshals v and resolves every *-file secret.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	err = cfg.resolveSecrets()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) resolveSecrets() error {
	var err error

	resolve := func(dst *string, name, file string) {
		if err != nil {
			return
		}

		*dst, err = secrets.LoadOptional(secrets.Source{Name: name, Value: *dst, File: file})
	}

	resolve(&c.SMTP.Password, "smtp password", c.SMTP.PasswordFile)
	resolve(&c.Stripe.SecretKey, "stripe secret key", c.Stripe.SecretKeyFile)
	resolve(&c.Stripe.WebhookSecret, "stripe webhook secret", c.Stripe.WebhookSecretFile)
	resolve(&c.Paystack.SecretKey, "paystack secret key", c.Paystack.SecretKeyFile)
	resolve(&c.S3.SecretKey, "s3 secret key", c.S3.SecretKeyFile)

	return err
}

// Validate reports configuration that makes serving impossible.
func (c *Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d is out of range", c.Port))
	}

	if c.DB.DSN == "" {
		errs = append(errs, errors.New("db.dsn is required"))
	}

	if c.Redis.URL == "" {
		errs = append(errs, errors.New("redis.url is required"))
	}

	if c.Stripe.SecretKey != "" && c.Stripe.WebhookSecret == "" {
		errs = append(errs, errors.New("stripe.webhook-secret is required when stripe is enabled"))
	}

	if c.S3.Bucket != "" && (c.S3.AccessKey == "" || c.S3.SecretKey == "") {
		errs = append(errs, errors.New("s3 credentials are required when s3.bucket is set"))
	}

	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "dev"
}

func (c *Config) StripeEnabled() bool {
	return c.Stripe.SecretKey != ""
}

func (c *Config) PaystackEnabled() bool {
	return c.Paystack.SecretKey != ""
}
