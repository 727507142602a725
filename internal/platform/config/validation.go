package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their koanf keys, so a failure names the
// exact YAML key or APP_ variable to fix.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("koanf"); name != "" && name != "-" {
			return name
		}

		return fld.Name
	})
	v.RegisterStructValidation(validateDeadlines, Config{})

	return v
}

// validateDeadlines checks settings that only make sense together. Health
// checks and breaker metrics are keyed by downstream name, and one downstream
// attempt has to fit inside the API request deadline.
func validateDeadlines(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}

	if cfg.Services.Geocoder.Name != "" && cfg.Services.Geocoder.Name == cfg.Services.Astrology.Name {
		sl.ReportError(cfg.Services.Astrology.Name, "services.astrology.name", "Name", "nefield", "services.geocoder.name")
	}

	if cfg.Server.RequestTimeout > 0 && cfg.Server.RequestTimeout <= cfg.Client.Timeout {
		sl.ReportError(cfg.Server.RequestTimeout, "server.request_timeout", "RequestTimeout", "gtfield", "client.timeout")
	}
}

// Validate checks the loaded configuration. A missing astrology API key is
// not a failure here; readiness reports it instead.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}

	return nil
}

func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, formatFieldError(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		// Param is "Enabled true"; the sibling key shares the field's prefix.
		sibling, value, _ := strings.Cut(e.Param(), " ")
		return fmt.Sprintf("%s is required when %s is %s", field, siblingPath(field, sibling), value)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be longer than %s", field, e.Param())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return field + " must be an absolute URL such as https://host"
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// formatFieldPath turns "Config.server.request_timeout" into
// "server.request_timeout".
func formatFieldPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return strings.ToLower(namespace)
	}

	return strings.ToLower(rest)
}

// siblingPath replaces the last key of field with sibling's koanf key.
func siblingPath(field, sibling string) string {
	key := strings.ToLower(sibling)

	if i := strings.LastIndex(field, "."); i >= 0 {
		return field[:i+1] + key
	}

	return key
}
