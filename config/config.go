// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"runtime"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct: the design parameters bound
// from the command line plus their registered defaults.
type Config struct {
	// In is the path to the epitope file (one peptide per line)
	In string `mapstructure:"in"`

	// Alleles is the path to the HLA allele/frequency file
	Alleles string `mapstructure:"alleles"`

	// Out is the path the assembled design is written to
	Out string `mapstructure:"out"`

	// MaxLength is the maximum spacer length K
	MaxLength int `mapstructure:"max-length"`

	// Alpha weighs epitope recovery in the junction objective
	Alpha float64 `mapstructure:"alpha"`

	// Beta weighs neo-epitope immunogenicity avoidance
	Beta float64 `mapstructure:"beta"`

	// Cleavage is the cleavage-site prediction method name
	Cleavage string `mapstructure:"cleavage"`

	// Binding is the epitope binding prediction method name
	Binding string `mapstructure:"binding"`

	// Threshold is the binding score above which a junction window counts
	// as immunogenic
	Threshold float64 `mapstructure:"threshold"`

	// Threads sizes the junction evaluation worker pool
	Threads int `mapstructure:"threads"`

	// Approximate tries the heuristic solver before the exact one
	Approximate bool `mapstructure:"approximate"`
}

// SetDefaults registers the default value of every setting with Viper.
func SetDefaults() {
	viper.SetDefault("max-length", 6)
	viper.SetDefault("alpha", 0.99)
	viper.SetDefault("beta", 0.0)
	viper.SetDefault("cleavage", "pcm")
	viper.SetDefault("binding", "syfpeithi")
	viper.SetDefault("threshold", 20.0)
	viper.SetDefault("threads", runtime.NumCPU())
}

// New returns a Config populated from Viper and validated.
func New() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode settings: %v", err)
	}

	if c.Alpha < 0 || c.Beta < 0 {
		return Config{}, fmt.Errorf("alpha and beta must be >= 0, got %g and %g", c.Alpha, c.Beta)
	}
	if c.MaxLength < 0 {
		return Config{}, fmt.Errorf("max spacer length must be >= 0, got %d", c.MaxLength)
	}
	if c.Threads < 1 {
		c.Threads = runtime.NumCPU()
	}
	return c, nil
}
