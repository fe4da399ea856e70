package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	// Home is the directory holding the field catalog and config file.
	Home string
	// LogLevel is the zerolog level name ("debug", "info", ...).
	LogLevel string
	// MaxItems caps how many slot/field lines a summary extracts per
	// category.
	MaxItems int
	// ScanPatterns are the glob patterns used to discover permit files.
	ScanPatterns []string
}

// DefaultScanPatterns match the document types permits arrive as, plus
// loosely named permit paperwork.
var DefaultScanPatterns = []string{
	"*.pdf", "*.txt", "*.doc", "*.docx",
	"*permit*", "*license*", "*application*",
}

// DefaultHome returns ~/.fields.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(dir, ".fields"), nil
}

// Init initialises viper: optional config file in the home directory,
// FIELDS_* environment overrides, and defaults.
func Init(home, cfgFile string) error {
	viper.Reset()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(home)
	}

	// Environment variables take precedence over the config file.
	viper.SetEnvPrefix("FIELDS")
	viper.AutomaticEnv()

	viper.SetDefault("log_level", "info")
	viper.SetDefault("max_items", 500)
	viper.SetDefault("scan_patterns", DefaultScanPatterns)

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; a malformed one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if cfgFile != "" || !os.IsNotExist(err) {
				return fmt.Errorf("read config: %w", err)
			}
		}
	}
	return nil
}

// Load builds a Config from viper state.
func Load(home string) (*Config, error) {
	maxItems := viper.GetInt("max_items")
	if maxItems <= 0 {
		return nil, fmt.Errorf("max_items must be positive, got %d", maxItems)
	}
	patterns := viper.GetStringSlice("scan_patterns")
	if len(patterns) == 0 {
		patterns = DefaultScanPatterns
	}
	return &Config{
		Home:         home,
		LogLevel:     viper.GetString("log_level"),
		MaxItems:     maxItems,
		ScanPatterns: patterns,
	}, nil
}
