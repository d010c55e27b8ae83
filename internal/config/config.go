// Package config resolves qbalance defaults from environment variables and
// an optional per-environment yaml file. Environment keys win over yaml
// keys; missing files are warned about and skipped, never fatal.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

type Config struct {
	config *viper.Viper
}

// Load reads configuration for the given environment name. An empty env
// falls back to the ENV variable, then to "local".
func Load(env string) (*Config, error) {
	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	return &Config{config: viperConfig}, nil
}

// GetScaleFactor returns the default scale factor q, or 0 when unset.
func (c *Config) GetScaleFactor() float64 {
	q := c.config.GetFloat64("QBALANCE_FACTOR")
	if q == 0 {
		q = c.config.GetFloat64("scale.factor")
	}

	return q
}

// GetExpand returns the default scaling direction.
func (c *Config) GetExpand() bool {
	if c.config.IsSet("QBALANCE_EXPAND") {
		return c.config.GetBool("QBALANCE_EXPAND")
	}

	return c.config.GetBool("scale.expand")
}

// GetInputPath returns the default input file path, empty for stdin.
func (c *Config) GetInputPath() string {
	in := c.config.GetString("QBALANCE_INPUT")
	if len(in) == 0 {
		in = c.config.GetString("input.path")
	}

	return in
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
