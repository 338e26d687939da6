package config

import (
	"os"
	"strings"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment.
// CI=true wins over ENV so pipelines never pick up local settings.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	return ParseEnvironment(os.Getenv("ENV"))
}

// ParseEnvironment maps an ENV value to an Environment, defaulting to Development.
func ParseEnvironment(value string) Environment {
	switch Environment(strings.ToLower(strings.TrimSpace(value))) {
	case Production, "prod":
		return Production
	case Test:
		return Test
	case CI:
		return CI
	default:
		return Development
	}
}

// IsProduction reports whether structured production logging and
// secret-only credentials apply.
func (e Environment) IsProduction() bool {
	return e == Production
}
