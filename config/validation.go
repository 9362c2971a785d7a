package config

import (
	"fmt"
	"strconv"
)

// ValidateConfig checks that every required configuration value is set
// and well-formed before the server starts.
func ValidateConfig(cfg *Config) error {
	required := map[string]string{
		"server port": cfg.ServerPort,
		"db host":     cfg.DBHost,
		"db port":     cfg.DBPort,
		"db user":     cfg.DBUser,
		"db name":     cfg.DBName,
		"jwt secret":  cfg.JWTSecret,
	}

	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if err := validatePort(cfg.ServerPort); err != nil {
		return fmt.Errorf("invalid server port: %w", err)
	}
	if err := validatePort(cfg.DBPort); err != nil {
		return fmt.Errorf("invalid db port: %w", err)
	}
	if cfg.RedisPort != "" {
		if err := validatePort(cfg.RedisPort); err != nil {
			return fmt.Errorf("invalid redis port: %w", err)
		}
	}

	if len(cfg.JWTSecret) < 16 && !IsTest() {
		return fmt.Errorf("jwt secret must be at least 16 characters")
	}

	return nil
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("%q is not a number", port)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("%d is out of range", n)
	}
	return nil
}
