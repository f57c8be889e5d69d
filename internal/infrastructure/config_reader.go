package infrastructure

import (
	"fmt"
	"hartree-fock/internal/domain"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var _ domain.ConfigReader = (*YAMLConfigReader)(nil)

type YAMLConfigReader struct {
	logger *zap.Logger
}

func NewYAMLConfigReader(logger *zap.Logger) *YAMLConfigReader {
	return &YAMLConfigReader{logger: logger}
}

// ReadConfig reads the YAML file at path over domain.DefaultConfig.
// An empty path yields the defaults.
func (r *YAMLConfigReader) ReadConfig(path string) (*domain.Config, error) {
	config := domain.DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		// Ключи, отсутствующие в файле, сохраняют значения по умолчанию
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		r.logger.Debug("Config file loaded", zap.String("path", path))
	}

	r.setDefaults(&config)
	return &config, nil
}

func (r *YAMLConfigReader) setDefaults(config *domain.Config) {
	if config.Zeta == 0 {
		config.Zeta = 1
	}
	if len(config.Basis) == 0 {
		config.Basis = domain.DefaultConfig().Basis
	}
	if config.Decimals < 0 {
		config.Decimals = 6
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}

// Validate checks a fully assembled config.
func Validate(config *domain.Config) error {
	if config.Points < 0 {
		return fmt.Errorf("%w: points must not be negative, got %d", domain.ErrInvalidConfig, config.Points)
	}
	if !(config.Zeta > 0) {
		return fmt.Errorf("%w: zeta must be positive, got %g", domain.ErrInvalidConfig, config.Zeta)
	}
	for _, name := range config.Basis {
		if _, err := domain.BasisByName(name, config.Zeta); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
		}
	}
	switch strings.ToLower(config.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", domain.ErrInvalidConfig, config.LogLevel)
	}
	return nil
}
