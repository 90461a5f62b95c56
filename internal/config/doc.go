// Package config loads pipefile settings with viper.
//
// Sources, lowest precedence first: built-in defaults, an optional YAML file,
// an optional dotenv file, PIPEFILE_* environment variables, and explicit
// overrides (CLI flags).
package config
