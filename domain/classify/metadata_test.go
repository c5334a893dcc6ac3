package classify

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMetadata_EmbeddedDefault(t *testing.T) {
	meta, err := LoadMetadata("")
	if err != nil {
		t.Fatal(err)
	}
	if len(meta.Classes) == 0 {
		t.Fatal("embedded metadata has no classes")
	}
	if meta.ImageSize <= 0 {
		t.Fatalf("embedded metadata image_size = %d", meta.ImageSize)
	}
	if len(meta.OutputShape) == 0 || meta.OutputShape[len(meta.OutputShape)-1] != int64(len(meta.Classes)) {
		t.Fatalf("output shape %v does not match %d classes", meta.OutputShape, len(meta.Classes))
	}
}

func TestLoadMetadata_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.json")
	body := `{
		"classes": ["cat", "dog"],
		"input_shape": [1, 3, 64, 64],
		"output_shape": [1, 2],
		"image_size": 64,
		"activation": "sigmoid"
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	meta, err := LoadMetadata(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(meta.Classes) != 2 || meta.ImageSize != 64 || meta.Activation != "sigmoid" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
}

func TestLoadMetadata_MissingFile(t *testing.T) {
	if _, err := LoadMetadata(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("missing file must error")
	}
}

func TestLoadMetadata_Invalid(t *testing.T) {
	cases := map[string]string{
		"no classes":      `{"classes": [], "input_shape": [1], "output_shape": [1], "image_size": 64}`,
		"no shapes":       `{"classes": ["a"], "image_size": 64}`,
		"zero image size": `{"classes": ["a"], "input_shape": [1], "output_shape": [1], "image_size": 0}`,
		"bad activation":  `{"classes": ["a"], "input_shape": [1], "output_shape": [1], "image_size": 64, "activation": "relu"}`,
		"not json":        `{{{`,
	}
	dir := t.TempDir()
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".json")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadMetadata(path); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}
