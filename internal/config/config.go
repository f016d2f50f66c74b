// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when the environment leaves a setting unset.
const (
	DefaultRegion  = "os_asia"
	DefaultOutPath = "good_materials.json"
	DefaultCount   = 50
	DefaultTimeout = 30 * time.Second
)

// cookieFields are the two session cookie fields HoyoLab requires for the
// calculator API. Both must be present verbatim in the COOKIES value.
var cookieFields = []string{"ltoken_v2", "ltuid_v2"}

// Config holds every setting the export pipeline needs. It is populated once
// at startup and passed explicitly; no component reads the environment after
// FromEnv returns.
type Config struct {
	Cookies string `validate:"required"`         // HoyoLab session cookie string
	UID     string `validate:"required,numeric"` // In-game account identifier
	Region  string `validate:"required"`         // Account server region
	OutPath string `validate:"required"`         // Destination for the GOOD file
	Count   int    `validate:"min=1"`            // Compute multiplier per selected roster entry
	Timeout time.Duration
	Verbose bool
}

// Error reports a missing or malformed configuration value.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// FromEnv builds a Config from process environment variables. godotenv merges
// the .env file into the environment before this runs, so a .env entry and a
// real environment variable are interchangeable.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Cookies: strings.TrimSpace(os.Getenv("COOKIES")),
		UID:     strings.TrimSpace(os.Getenv("UID")),
		Region:  DefaultRegion,
		OutPath: DefaultOutPath,
		Count:   DefaultCount,
		Timeout: DefaultTimeout,
	}

	if v := os.Getenv("REGION"); v != "" {
		cfg.Region = v
	}
	if v := os.Getenv("GOOD_OUT"); v != "" {
		cfg.OutPath = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all required settings are present and well-formed.
// It returns a *Error describing the first problem found.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return &Error{Message: fmt.Sprintf("%s is missing or invalid (rule: %s)", envName(f.Field()), f.Tag())}
		}
		return &Error{Message: "invalid configuration", Cause: err}
	}

	for _, field := range cookieFields {
		if !strings.Contains(c.Cookies, field+"=") {
			return &Error{Message: fmt.Sprintf("COOKIES must contain the %s field", field)}
		}
	}

	return nil
}

// envName maps a Config field back to the environment variable a user would
// set, so validation messages point at the thing they need to fix.
func envName(field string) string {
	switch field {
	case "Cookies":
		return "COOKIES"
	case "UID":
		return "UID"
	case "Region":
		return "REGION"
	case "OutPath":
		return "GOOD_OUT"
	case "Count":
		return "count"
	}
	return field
}
