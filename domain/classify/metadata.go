package classify

import (
	"encoding/json"
	"fmt"
	"os"

	"piclabel/assets"
)

// LoadMetadata reads model metadata from path. An empty path selects the
// metadata embedded for the bundled model.
func LoadMetadata(path string) (Metadata, error) {
	raw := assets.DefaultMetadataJSON
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Metadata{}, fmt.Errorf("read metadata: %w", err)
		}
		raw = b
	}
	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return Metadata{}, fmt.Errorf("parse metadata: %w", err)
	}
	if err := meta.validate(); err != nil {
		return Metadata{}, err
	}
	return meta, nil
}

func (m *Metadata) validate() error {
	if len(m.Classes) == 0 {
		return fmt.Errorf("metadata: no class labels")
	}
	if len(m.InputShape) == 0 || len(m.OutputShape) == 0 {
		return fmt.Errorf("metadata: missing tensor shapes")
	}
	if m.ImageSize <= 0 {
		return fmt.Errorf("metadata: image_size must be positive, got %d", m.ImageSize)
	}
	switch m.Activation {
	case "", "softmax", "sigmoid", "none":
	default:
		return fmt.Errorf("metadata: unknown activation %q", m.Activation)
	}
	return nil
}
