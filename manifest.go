package dock

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultManifestPath is the manifest location used by [FromManifest] when no path is given. It
// is resolved relative to the working directory.
const DefaultManifestPath = "Dock.toml"

// manifestFile is the on-disk layout. Only the [package] table is read; other tables are ignored.
type manifestFile struct {
	Package struct {
		Name        string   `toml:"name"`
		Description string   `toml:"description"`
		Authors     []string `toml:"authors"`
		Version     string   `toml:"version"`
	} `toml:"package"`
}

// LoadManifest reads the [package] table of the TOML file at path into a [Config]. Keys that are
// absent leave the matching field unset.
//
// A file that cannot be read yields an [ErrConfigRead] error; a file that cannot be decoded yields
// an [ErrConfigParse] error. Both messages name the path.
func LoadManifest(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, NewError(ErrConfigRead, fmt.Errorf("manifest %s: %w", path, err))
	}

	var raw manifestFile
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Config{}, NewError(ErrConfigParse, fmt.Errorf("manifest %s: %w", path, err))
	}

	var cfg Config
	if meta.IsDefined("package", "name") {
		cfg = cfg.WithName(strings.TrimSpace(raw.Package.Name))
	}
	if meta.IsDefined("package", "description") {
		cfg = cfg.WithDescription(strings.TrimSpace(raw.Package.Description))
	}
	if meta.IsDefined("package", "authors") {
		cfg = cfg.WithAuthors(raw.Package.Authors)
	}
	if meta.IsDefined("package", "version") {
		cfg = cfg.WithVersion(strings.TrimSpace(raw.Package.Version))
	}
	return cfg, nil
}
