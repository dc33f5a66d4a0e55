package patientapi

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config holds configuration for the patient API client.
type Config struct {
	// BaseURL is the API root, e.g. https://patients.example.com. The token
	// scope is derived from it.
	BaseURL string `mapstructure:"base_url" default:"" validate:"required,url"`
	// TokenURL is the OAuth2 client-credentials endpoint.
	TokenURL     string `mapstructure:"token_url" default:"" validate:"required,url"`
	ClientID     string `mapstructure:"client_id" default:"" validate:"required"`
	ClientSecret string `mapstructure:"client_secret" default:"" validate:"required"`
	// XSRFToken is sent as the XSRF-TOKEN cookie on the token request when set.
	XSRFToken string `mapstructure:"xsrf_token" default:""`
	// LookupTimeoutSeconds bounds the search, mint and token calls.
	LookupTimeoutSeconds int `mapstructure:"lookup_timeout_seconds" default:"15" validate:"gte=0"`
	// RateLimit paces remote calls in requests per second. 0 disables pacing.
	RateLimit float64 `mapstructure:"rate_limit" default:"0" validate:"gte=0"`
}

// Scope returns the OAuth2 scope requested for the API.
func (c Config) Scope() string {
	return c.BaseURL + "/general_scope"
}

// Validate checks the settings needed to reach the API.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid api config: %w", err)
	}
	return nil
}
