package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"stocktrace/internal/locate"
)

// WeightsConfig is the structure of the optional weights.yaml file.
// Per-source-kind tables are easier to manage in YAML than env vars.
// Keys are source-kind names ("confirmed", "erasure", "pallet", ...).
type WeightsConfig struct {
	Weights     map[string]float64 `yaml:"weights"`
	Confidences map[string]float64 `yaml:"confidences"`
	DecayFloors map[string]float64 `yaml:"decay_floors"`
}

// LoadWeights reads the YAML weight-override file named by the config.
// Returns nil without error if the file doesn't exist; the file is
// optional.
func LoadWeights(path string) (*WeightsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read weights file: %w", err)
	}

	var wc WeightsConfig
	if err := yaml.Unmarshal(data, &wc); err != nil {
		return nil, fmt.Errorf("failed to parse weights file: %w", err)
	}
	return &wc, nil
}

// Apply overlays the YAML tables onto engine params. Unknown kind names
// are reported as errors rather than silently ignored.
func (wc *WeightsConfig) Apply(p *locate.Params) error {
	if wc == nil {
		return nil
	}
	for name, w := range wc.Weights {
		k := locate.ParseSourceKind(name)
		if k == locate.KindUnknown {
			return fmt.Errorf("weights: unknown source kind %q", name)
		}
		p.Weights[k] = w
	}
	for name, c := range wc.Confidences {
		k := locate.ParseSourceKind(name)
		if k == locate.KindUnknown {
			return fmt.Errorf("confidences: unknown source kind %q", name)
		}
		p.Confidences[k] = c
	}
	for name, f := range wc.DecayFloors {
		k := locate.ParseSourceKind(name)
		if k == locate.KindUnknown {
			return fmt.Errorf("decay_floors: unknown source kind %q", name)
		}
		p.DecayFloors[k] = f
	}
	return nil
}
