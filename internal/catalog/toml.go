package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// fileDoc is the on-disk shape of a catalog TOML file: a list of
// [[figure]] tables.
type fileDoc struct {
	Figures []Figure `toml:"figure"`
}

// LoadFile reads figures from a TOML file. A missing file yields an
// empty slice and no error, so callers can treat the file as optional.
func LoadFile(path string) ([]Figure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("catalog: reading %s: %w", path, err)
	}

	var doc fileDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parsing %s: %w", path, err)
	}
	return doc.Figures, nil
}

// SaveFile writes figures to a TOML file, creating parent directories
// as needed.
func SaveFile(path string, figures []Figure) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("catalog: creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(fileDoc{Figures: figures})
	if err != nil {
		return fmt.Errorf("catalog: marshaling figures: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("catalog: writing %s: %w", path, err)
	}
	return nil
}
