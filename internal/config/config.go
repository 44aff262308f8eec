package config

import (
	"fmt"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/tinycards/internal/tinycards"
)

type Config struct {
	API         APIConfig         `mapstructure:"api"`
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Session     SessionConfig     `mapstructure:"session"`
	Templates   TemplatesConfig   `mapstructure:"templates"`
}

type APIConfig struct {
	BaseURL          string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds   int    `mapstructure:"timeout_seconds" validate:"gte=1"`
	RetryAttempts    uint   `mapstructure:"retry_attempts" validate:"lte=10"`
	RetryDelayMillis int    `mapstructure:"retry_delay_millis" validate:"gte=0"`
}

// ClientConfig returns the configuration of the API client.
func (c APIConfig) ClientConfig() tinycards.Config {
	return tinycards.Config{
		BaseURL:       c.BaseURL,
		Timeout:       time.Duration(c.TimeoutSeconds) * time.Second,
		RetryAttempts: c.RetryAttempts,
		RetryDelay:    time.Duration(c.RetryDelayMillis) * time.Millisecond,
	}
}

type CredentialsConfig struct {
	Identifier string `mapstructure:"identifier"`
	Password   string `mapstructure:"password"`
}

type SessionConfig struct {
	// File is the YAML file of the saved session. The temporary directory is used when it is empty.
	File string `mapstructure:"file"`
}

type TemplatesConfig struct {
	// Template is optional - the embedded template is used when it is empty
	DeckMarkdownTemplate string `mapstructure:"deck_markdown_template" validate:"omitempty,deck_template"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/tinycards")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("api.base_url", tinycards.DefaultBaseURL)
	v.SetDefault("api.timeout_seconds", int(tinycards.DefaultTimeout/time.Second))
	v.SetDefault("api.retry_attempts", tinycards.DefaultRetryAttempts)
	v.SetDefault("api.retry_delay_millis", int(tinycards.DefaultRetryDelay/time.Millisecond))
	v.SetDefault("session.file", "")
	v.SetDefault("templates.deck_markdown_template", "")

	if err := v.BindEnv("api.base_url", "TINYCARDS_API_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind TINYCARDS_API_URL environment variable: %w", err)
	}
	// Credentials can also be written in the config file, but environment variables take precedence
	if err := v.BindEnv("credentials.identifier", tinycards.IdentifierEnv); err != nil {
		return nil, fmt.Errorf("failed to bind %s environment variable: %w", tinycards.IdentifierEnv, err)
	}
	if err := v.BindEnv("credentials.password", tinycards.PasswordEnv); err != nil {
		return nil, fmt.Errorf("failed to bind %s environment variable: %w", tinycards.PasswordEnv, err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
