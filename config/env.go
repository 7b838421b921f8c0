package config

import (
	"os"
	"strings"
)

// Environment is the deployment stage the service runs in. It decides
// where secrets come from and how strict validation is.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment reads CI=true or ENV. Anything unrecognised is development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	switch Environment(strings.ToLower(os.Getenv("ENV"))) {
	case Production:
		return Production
	case Test:
		return Test
	default:
		return Development
	}
}

// IsProduction reports whether e is the production stage.
func (e Environment) IsProduction() bool {
	return e == Production
}

// UsesSecretFiles reports whether secrets are read from SECRETS_DIR rather
// than the environment.
func (e Environment) UsesSecretFiles() bool {
	return e != CI
}
