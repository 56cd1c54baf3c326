package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// GlobalConfig holds the global configuration instance.
var GlobalConfig *Config        //nolint:gochecknoglobals // Singleton pattern for configuration
var globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects GlobalConfig and globalConfigInit
var globalConfigInit bool       //nolint:gochecknoglobals // Tracks if global config has been initialized

// InitGlobalConfig initializes the global configuration, merging the resolved
// project directory's config.yaml when one was recorded.
func InitGlobalConfig() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	if globalConfigInit {
		return
	}

	GlobalConfig = NewWithProjectDir(GetResolvedProjectDir())
	globalConfigInit = true
}

// ResetGlobalConfigForTest resets the global config for testing purposes.
func ResetGlobalConfigForTest() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	GlobalConfig = nil
	globalConfigInit = false
}

// GetGlobalConfig returns the global configuration, initializing it if needed.
func GetGlobalConfig() *Config {
	InitGlobalConfig()
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return GlobalConfig
}

// GetCaseFile returns the configured default case file, or "".
func GetCaseFile() string {
	return GetGlobalConfig().Case.File
}

// GetGuidanceCatalog returns the configured guidance catalog path, or "".
func GetGuidanceCatalog() string {
	return GetGlobalConfig().Guidance.Catalog
}

// GetGuidanceCacheTTL returns the guidance cache lifetime.
func GetGuidanceCacheTTL() time.Duration {
	return time.Duration(GetGlobalConfig().Guidance.CacheTTLSeconds) * time.Second
}

// GetWatchDebounce returns the case-file watch debounce interval.
func GetWatchDebounce() time.Duration {
	return time.Duration(GetGlobalConfig().Case.WatchDebounceMs) * time.Millisecond
}

// GetDisplayConfig returns a copy of the display section.
func GetDisplayConfig() DisplayConfig {
	return GetGlobalConfig().Display
}

// EnsureConfigDir ensures the casedesk configuration directory exists.
func EnsureConfigDir() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}

// EnsureLogDir ensures the directory for the configured log file exists.
// If no log file is configured, it does nothing.
func EnsureLogDir() error {
	cfg := GetGlobalConfig()
	if cfg.Logging.File == "" {
		return nil
	}
	logDir := filepath.Dir(cfg.Logging.File)
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	return nil
}

// GetConfigDir returns the casedesk configuration directory: $CASEDESK_HOME
// when set, otherwise ~/.casedesk.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".casedesk"), nil
}
