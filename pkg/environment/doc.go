// Package environment names the deployment environments the binary knows
// about and normalises the aliases people actually type into APP_ENV.
//
//	environment.Parse("prod")  // Production
//	environment.Parse("")      // Development
//
// Unknown values fall back to Development so a typo never silently enables
// production defaults.
package environment
