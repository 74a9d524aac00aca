// Package config resolves settings from defaults, environment
// variables and command-line flags, in that order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds everything the tool can be configured with. The
// minimum ages are day counts; zero disables a dimension.
type Config struct {
	MinCreatedDays  uint64      `mapstructure:"min_created"`
	MinModifiedDays uint64      `mapstructure:"min_modified"`
	MinAccessedDays uint64      `mapstructure:"min_accessed"`
	Chart           ChartConfig `mapstructure:"chart"`
}

// ChartConfig shapes the rendered pie chart.
type ChartConfig struct {
	Radius      int `mapstructure:"radius"`
	AspectRatio int `mapstructure:"aspect_ratio"`
}

// DefaultConfig values
var DefaultConfig = Config{
	MinCreatedDays:  0,
	MinModifiedDays: 0,
	MinAccessedDays: 0,
	Chart: ChartConfig{
		Radius:      6,
		AspectRatio: 3,
	},
}

// InitFlags registers the flags on the root command.
func InitFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64P("min-created", "c", DefaultConfig.MinCreatedDays, "Creation date must be at least DAYS in the past")
	cmd.Flags().Uint64P("min-modified", "m", DefaultConfig.MinModifiedDays, "Last modification date must be at least DAYS in the past")
	cmd.Flags().Uint64P("min-accessed", "a", DefaultConfig.MinAccessedDays, "Last access date must be at least DAYS in the past")
	cmd.Flags().Int("radius", DefaultConfig.Chart.Radius, "Radius of the rendered pie chart")
	cmd.Flags().Int("aspect-ratio", DefaultConfig.Chart.AspectRatio, "Horizontal stretch of the rendered pie chart")
}

// Load builds the final configuration for one invocation. Environment
// variables use the DISKPIE_ prefix (e.g. DISKPIE_MIN_CREATED,
// DISKPIE_CHART_RADIUS).
func Load(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("DISKPIE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, cmd); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("min_created", DefaultConfig.MinCreatedDays)
	v.SetDefault("min_modified", DefaultConfig.MinModifiedDays)
	v.SetDefault("min_accessed", DefaultConfig.MinAccessedDays)
	v.SetDefault("chart.radius", DefaultConfig.Chart.Radius)
	v.SetDefault("chart.aspect_ratio", DefaultConfig.Chart.AspectRatio)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	bindings := map[string]string{
		"min_created":        "min-created",
		"min_modified":       "min-modified",
		"min_accessed":       "min-accessed",
		"chart.radius":       "radius",
		"chart.aspect_ratio": "aspect-ratio",
	}

	for key, flag := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return nil
}
