package app

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/skymap/pkg/constants"
)

// Config holds the application configuration loaded from environment
// variables, .env files and command-line flags.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Build configuration
	OutputFile string
	SourceDir  string
	CacheDir   string
	CacheTTL   time.Duration
	RulesFile  string
	Double     bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by cobra)
//  2. Environment variables
//  3. .env files
//  4. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files before viper reads the environment.
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("skymap")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Optional config file in the home directory or the working directory.
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName(".skymap")
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),

		OutputFile: viper.GetString("output"),
		SourceDir:  viper.GetString("source-dir"),
		CacheDir:   viper.GetString("cache-dir"),
		CacheTTL:   viper.GetDuration("cache-ttl"),
		RulesFile:  viper.GetString("rules"),
		Double:     viper.GetBool("double"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if config.OutputFile == "" {
		config.OutputFile = constants.DefaultOutputFile
	}
	if config.CacheDir == "" {
		config.CacheDir = defaultCacheDir()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = constants.DefaultCacheTTL
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags so flag
// values take precedence over env vars and .env files.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// defaultCacheDir resolves the per-user download cache directory, falling
// back to a relative directory when the OS offers no cache location.
func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return constants.DefaultCacheDirName
	}
	return filepath.Join(base, constants.DefaultCacheDirName)
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
