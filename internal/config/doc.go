// Package config loads CLI configuration via viper.
//
// Settings come from an optional YAML file in the home directory, FIELDS_*
// environment variables, and built-in defaults, in increasing precedence of
// environment over file.
package config
