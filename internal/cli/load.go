package cli

import (
	"fmt"

	"github.com/ppiankov/typechart/internal/model"
	"github.com/spf13/viper"
)

// loadConfig layers config file, environment and bound flags over the defaults
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
