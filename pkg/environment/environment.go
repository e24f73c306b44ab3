package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

var aliases = map[string]Environment{
	"development": Development,
	"dev":         Development,
	"local":       Development,
	"staging":     Staging,
	"stage":       Staging,
	"production":  Production,
	"prod":        Production,
}

// Parse normalises an environment name. Unknown and empty values map to Development.
func Parse(s string) Environment {
	if e, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return e
	}
	return Development
}

func (e Environment) IsProduction() bool  { return e == Production }
func (e Environment) IsStaging() bool     { return e == Staging }
func (e Environment) IsDevelopment() bool { return e == Development }
