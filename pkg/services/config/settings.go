package config

import (
	"fmt"
	"strings"

	"github.com/de-tools/aws-billing/pkg/models/domain"
	"github.com/spf13/viper"
)

const DefaultRegion = "us-east-1"

// Settings hold the process-wide defaults read once at startup.
type Settings struct {
	Profile     string   `mapstructure:"profile"`
	Region      string   `mapstructure:"region"`
	DateFormat  string   `mapstructure:"date_format"`
	Metrics     []string `mapstructure:"metrics"`
	Granularity string   `mapstructure:"granularity"`
}

// LoadSettings reads the optional config file at path and the
// AWS_BILLING_* environment, falling back to built-in defaults.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("profile", "")
	v.SetDefault("region", DefaultRegion)
	v.SetDefault("date_format", domain.DateLayout)
	v.SetDefault("metrics", domain.DefaultMetrics)
	v.SetDefault("granularity", string(domain.GranularityDaily))

	v.SetEnvPrefix("AWS_BILLING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse billing settings: %w", err)
	}
	return &settings, nil
}
