package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// namespacePattern restricts storage.namespace to characters that are safe
// inside a storage key.
var namespacePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// validate reports fields by their koanf key so messages match the YAML.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	return v
}

// Validate checks field constraints and then the rules that span several
// sections. The service should not start with invalid config.
func (c *Config) Validate() error {
	var problems []string

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}

		for _, e := range validationErrors {
			problems = append(problems, formatFieldError(e))
		}
	}

	problems = append(problems, c.crossFieldProblems()...)

	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(problems, "\n  "))
}

// crossFieldProblems covers rules the struct tags cannot express.
func (c *Config) crossFieldProblems() []string {
	var problems []string

	if c.Catalog.Watch && c.Catalog.Dir == "" {
		problems = append(problems, "catalog.watch needs catalog.dir; the embedded catalog cannot change")
	}

	if c.Storage.Namespace != "" && !namespacePattern.MatchString(c.Storage.Namespace) {
		problems = append(problems, "storage.namespace may only contain letters, digits, '.', '_' and '-'")
	}

	if c.Storage.Driver == "sqlite" && c.Log.File.Enabled && c.Storage.Path != "" &&
		filepath.Clean(c.Storage.Path) == filepath.Clean(c.Log.File.Path) {
		problems = append(problems, "log.file.path must differ from storage.path")
	}

	if u, err := url.Parse(c.Share.BaseURL); c.Share.BaseURL != "" && (err != nil || (u.Scheme != "http" && u.Scheme != "https")) {
		problems = append(problems, "share.base_url must be an http or https URL")
	}

	return problems
}

// formatFieldError formats a single field validation error.
func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// formatFieldPath drops the root struct name: "Config.providers.zenquotes.base_url"
// becomes "providers.zenquotes.base_url".
func formatFieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}
