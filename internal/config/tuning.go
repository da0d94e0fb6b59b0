package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"staymate/recommender-service/internal/recommend"
)

// tuningFile is the YAML shape of a tuning overlay. Every field is optional;
// anything absent keeps its stock value.
type tuningFile struct {
	Lambda         *float64 `yaml:"lambda"`
	TauLow         *float64 `yaml:"tau_low"`
	TauHigh        *float64 `yaml:"tau_high"`
	MaxRelaxations *int     `yaml:"max_relaxations"`

	Weights map[string]struct {
		Price  float64 `yaml:"price"`
		Rating float64 `yaml:"rating"`
	} `yaml:"weights"`
	Floors map[string]float64 `yaml:"floors"`
}

// LoadTuning returns the recommender parameters, overlaying the YAML file at
// path on top of the defaults. An empty path returns the defaults unchanged.
func LoadTuning(path string) (recommend.Params, error) {
	params := recommend.DefaultParams()
	if path == "" {
		return params, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("read tuning file: %w", err)
	}

	var tf tuningFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return params, fmt.Errorf("parse tuning file %s: %w", path, err)
	}

	if tf.Lambda != nil {
		params.Lambda = *tf.Lambda
	}
	if tf.TauLow != nil {
		if *tf.TauLow <= 0 {
			return params, fmt.Errorf("tau_low must be positive, got %v", *tf.TauLow)
		}
		params.TauLow = *tf.TauLow
	}
	if tf.TauHigh != nil {
		if *tf.TauHigh <= 0 {
			return params, fmt.Errorf("tau_high must be positive, got %v", *tf.TauHigh)
		}
		params.TauHigh = *tf.TauHigh
	}
	if tf.MaxRelaxations != nil {
		if *tf.MaxRelaxations < 0 {
			return params, fmt.Errorf("max_relaxations must be >= 0, got %d", *tf.MaxRelaxations)
		}
		params.MaxRelaxations = *tf.MaxRelaxations
	}
	for purpose, w := range tf.Weights {
		params.Weights[purpose] = recommend.Weight{Price: w.Price, Rating: w.Rating}
	}
	for purpose, f := range tf.Floors {
		params.Floors[purpose] = f
	}

	return params, nil
}
