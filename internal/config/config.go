// Package config loads application settings from an optional YAML file with
// environment overrides.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/facturakit/facturakit/internal/template"
	facturaerrors "github.com/facturakit/facturakit/pkg/errors"
)

// Settings are the resolved application settings.
type Settings struct {
	StorePath       string `yaml:"store_path" validate:"required"`
	LogLevel        string `yaml:"log_level" validate:"required,oneof=trace debug info warn error"`
	CurrencySymbol  string `yaml:"currency_symbol" validate:"required"`
	DefaultTemplate string `yaml:"default_template" validate:"required"`
}

// Default returns the settings used when no file or overrides are present.
func Default() Settings {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Settings{
		StorePath:       filepath.Join(home, ".facturakit", "accounts.json"),
		LogLevel:        "info",
		CurrencySymbol:  "€",
		DefaultTemplate: "minimal",
	}
}

// Load resolves settings in order: defaults, then the YAML file at path if
// it exists, then environment variables. A .env file in the working
// directory is honoured before the environment is read.
func Load(path string) (*Settings, error) {
	// Missing .env is fine.
	_ = godotenv.Load()

	settings := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &settings); err != nil {
				return nil, facturaerrors.NewParseError(path, err)
			}
		case !os.IsNotExist(err):
			return nil, facturaerrors.NewParseError(path, err)
		}
	}

	applyEnv(&settings)

	if err := Validate(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func applyEnv(settings *Settings) {
	if v := os.Getenv("FACTURAKIT_STORE_PATH"); v != "" {
		settings.StorePath = v
	}
	if v := os.Getenv("FACTURAKIT_LOG_LEVEL"); v != "" {
		settings.LogLevel = v
	}
	if v := os.Getenv("FACTURAKIT_CURRENCY_SYMBOL"); v != "" {
		settings.CurrencySymbol = v
	}
	if v := os.Getenv("FACTURAKIT_DEFAULT_TEMPLATE"); v != "" {
		settings.DefaultTemplate = v
	}
}

var (
	validatorOnce     sync.Once
	validatorInstance *validator.Validate
)

func sharedValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInstance = validator.New()
	})
	return validatorInstance
}

// Validate checks the settings, including that the default template exists
// in the catalog.
func Validate(settings *Settings) error {
	if err := sharedValidator().Struct(settings); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
			fe := ves[0]
			return facturaerrors.NewValidationError(fe.Field(), "failed on rule "+fe.Tag(), nil)
		}
		return err
	}

	if _, err := template.Get(settings.DefaultTemplate); err != nil {
		return facturaerrors.NewValidationError("default_template", "unknown template "+settings.DefaultTemplate, err)
	}
	return nil
}
