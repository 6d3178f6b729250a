// Package manifest persists the mapping from original source text to
// generated asset path. The manifest is what makes asset generation
// incremental: a text already mapped to an existing file is never
// re-synthesized.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Filename is the manifest file name inside each language asset directory.
const Filename = "manifest.json"

// Manifest maps original source text (the exact string, not its slug) to
// the asset path relative to the asset root.
type Manifest map[string]string

// Load reads a manifest file. A missing file is not an error; it returns
// an empty manifest so a first run starts from nothing.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	return m, nil
}

// Save writes the manifest sorted by key, two-space indented, with HTML
// escaping off so source texts keep their accents and inverted marks
// literal. Sorted keys keep diffs reproducible across runs.
func (m Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}
