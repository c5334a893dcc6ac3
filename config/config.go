package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for classification and app behavior.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Model artifact locations. MetadataPath may be empty, in which case the
	// embedded default metadata is used.
	ModelPath    string `json:"model_path"`
	MetadataPath string `json:"metadata_path"`

	// Classification parameters
	Threshold float64 `json:"threshold"` // minimum confidence to display a label
	TopK      int     `json:"top_k"`     // ranked predictions kept per run

	// Capture behavior: prefer the foreground window over the full screen
	// when the platform can resolve its rectangle.
	ForegroundWindow bool `json:"foreground_window"`

	// Hint message delay after first appearance, in milliseconds.
	HintDelayMs int `json:"hint_delay_ms"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:            false,
		ModelPath:        "models/classifier.onnx",
		MetadataPath:     "",
		Threshold:        0.80,
		TopK:             5,
		ForegroundWindow: true,
		HintDelayMs:      1500,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.Threshold <= 0 || c.Threshold > 1 {
		c.Threshold = 0.80
	}
	if c.TopK <= 0 {
		c.TopK = 5
	}
	if c.HintDelayMs < 0 {
		c.HintDelayMs = 1500
	}
	if c.ModelPath == "" {
		c.ModelPath = "models/classifier.onnx"
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
