package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScoringWeights holds the relative weight of each sub-score in the
// composite. The shipped default is an equal 25% split.
type ScoringWeights struct {
	Workload   float64 `yaml:"workload"`
	Compliance float64 `yaml:"compliance"`
	Fairness   float64 `yaml:"fairness"`
	Preference float64 `yaml:"preference"`
}

// DefaultScoringWeights returns the equal-split default
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Workload:   0.25,
		Compliance: 0.25,
		Fairness:   0.25,
		Preference: 0.25,
	}
}

// LoadScoringWeights reads weights from a yaml file. A missing file falls
// back to the defaults; a present but invalid file is an error.
func LoadScoringWeights(path string) (ScoringWeights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultScoringWeights(), nil
		}
		return ScoringWeights{}, fmt.Errorf("read scoring weights: %w", err)
	}

	var weights ScoringWeights
	if err := yaml.Unmarshal(data, &weights); err != nil {
		return ScoringWeights{}, fmt.Errorf("parse scoring weights: %w", err)
	}

	if err := weights.Validate(); err != nil {
		return ScoringWeights{}, err
	}
	return weights.Normalized(), nil
}

// Validate checks that the weights can form a composite
func (w ScoringWeights) Validate() error {
	for name, v := range map[string]float64{
		"workload":   w.Workload,
		"compliance": w.Compliance,
		"fairness":   w.Fairness,
		"preference": w.Preference,
	} {
		if v < 0 {
			return fmt.Errorf("scoring weight %s must not be negative", name)
		}
	}
	if w.sum() <= 0 {
		return fmt.Errorf("scoring weights must sum to a positive value")
	}
	return nil
}

// Normalized scales the weights so they sum to 1
func (w ScoringWeights) Normalized() ScoringWeights {
	total := w.sum()
	return ScoringWeights{
		Workload:   w.Workload / total,
		Compliance: w.Compliance / total,
		Fairness:   w.Fairness / total,
		Preference: w.Preference / total,
	}
}

func (w ScoringWeights) sum() float64 {
	return w.Workload + w.Compliance + w.Fairness + w.Preference
}
