// Package config holds the tuning parameters of the stabilization pipeline.
// Every parameter has a hard-coded default matching the values the pipeline
// was tuned with; an optional yaml file can override them.
package config

import (
	"os"

	"github.com/spf13/viper"
)

// Tuning collects all tunable constants of the correction chain.
type Tuning struct {
	// One-euro filter
	MinCutoff float64 `mapstructure:"min_cutoff" yaml:"min_cutoff"` // baseline smoothing (Hz)
	Beta      float64 `mapstructure:"beta" yaml:"beta"`             // velocity coefficient
	DCutoff   float64 `mapstructure:"d_cutoff" yaml:"d_cutoff"`     // derivative cutoff (Hz)

	// Bone-length constraint tiers (relative deviation)
	SoftDeviation float64 `mapstructure:"soft_deviation" yaml:"soft_deviation"` // above: rescale to reference length
	HardDeviation float64 `mapstructure:"hard_deviation" yaml:"hard_deviation"` // above: rigid carry-forward

	// Floor lock
	FloorHeight   float64 `mapstructure:"floor_height" yaml:"floor_height"`     // foot below this Y is "near floor" (m)
	FloorVelocity float64 `mapstructure:"floor_velocity" yaml:"floor_velocity"` // per-frame displacement below this locks (m)

	// Landmark acceptance
	MinVisibility float64 `mapstructure:"min_visibility" yaml:"min_visibility"`

	// Ground calibration: quantile of per-frame min foot height taken as the
	// ground plane. Negative disables the calibration pass.
	GroundQuantile float64 `mapstructure:"ground_quantile" yaml:"ground_quantile"`

	// Keyframe reduction tolerance (m). Zero or negative disables reduction.
	ReduceTolerance float64 `mapstructure:"reduce_tolerance" yaml:"reduce_tolerance"`
}

// DefaultTuning returns the literal defaults from the pipeline's tuning.
func DefaultTuning() Tuning {
	return Tuning{
		MinCutoff:       1.0,
		Beta:            0.007,
		DCutoff:         1.0,
		SoftDeviation:   0.05,
		HardDeviation:   0.3,
		FloorHeight:     0.1,
		FloorVelocity:   0.05,
		MinVisibility:   0.5,
		GroundQuantile:  0.1,
		ReduceTolerance: 0,
	}
}

// Load reads tuning overrides from the yaml file at path. An empty path or a
// missing file yields the defaults.
func Load(path string) (Tuning, error) {
	tuning := DefaultTuning()
	if path == "" {
		return tuning, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return tuning, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return tuning, err
	}
	if err := v.Unmarshal(&tuning); err != nil {
		return tuning, err
	}
	return tuning, nil
}
