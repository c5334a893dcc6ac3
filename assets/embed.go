package assets

import (
	_ "embed"
)

// DefaultMetadataJSON contains the metadata shipped with the bundled model:
// class labels, tensor shapes and preprocessing parameters. Used whenever no
// metadata file is configured next to the model artifact.
//
//go:embed metadata.json
var DefaultMetadataJSON []byte
