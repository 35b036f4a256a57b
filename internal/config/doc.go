// Package config loads and validates application configuration from
// environment variables, with optional .env file support for development.
package config
