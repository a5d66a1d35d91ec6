package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/e-ogugua/devflow-cli/model"
	"gopkg.in/yaml.v3"
)

// file is the on-disk shape shared by every supported format.
type file struct {
	Tools []model.Tool `json:"tools" yaml:"tools" toml:"tools"`
}

// Load reads a catalog file. The format is picked from the extension:
// .yaml/.yml, .toml or .json.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f file
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".toml":
		err = toml.Unmarshal(data, &f)
	case ".json":
		err = json.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("catalog %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	// backfill display status for entries that omit it
	for i := range f.Tools {
		if f.Tools[i].Status == "" {
			f.Tools[i].Status = model.StatusAvailable
		}
	}

	c, err := New(f.Tools)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Open returns the catalog at path, or the builtin catalog when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Builtin(), nil
	}
	return Load(path)
}
