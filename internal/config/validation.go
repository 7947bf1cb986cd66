package config

import (
	"fmt"
	"regexp"
	"strings"
)

// domainRegex validates domain names.
var domainRegex = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$|^localhost$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig validates the entire configuration. The target IP is not
// checked; it is copied into the output as is.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{Field: "config", Message: "config is nil"}
	}

	required := []struct {
		field string
		value string
	}{
		{"domainsFile", cfg.DomainsFile},
		{"outputFile", cfg.OutputFile},
		{"banner.title", cfg.Banner.Title},
		{"banner.projectURL", cfg.Banner.ProjectURL},
		{"banner.timeLayout", cfg.Banner.TimeLayout},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Message: "value is required"}
		}
	}

	for i, d := range cfg.FallbackDomains {
		if !ValidateDomain(d) {
			return &ValidationError{
				Field:   fmt.Sprintf("fallbackDomains[%d]", i),
				Message: fmt.Sprintf("invalid domain: %s", d),
			}
		}
	}

	return nil
}

// ValidateDomain checks if a domain name is valid.
func ValidateDomain(domain string) bool {
	if domain == "" {
		return false
	}
	return domainRegex.MatchString(domain)
}
