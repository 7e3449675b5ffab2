// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Missing files fall back to built-in defaults, and RAILQUERY_* environment
// variables override individual settings.
package config
