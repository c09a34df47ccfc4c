package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	securejoin "github.com/cyphar/filepath-securejoin"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/firefly-engineering/worldclock/internal/errors"
	"github.com/firefly-engineering/worldclock/internal/logging"
)

const (
	// AppDirName is the directory under $XDG_CONFIG_HOME holding catalogs.
	AppDirName = "worldclock"

	// DefaultFileName is read when no --catalog flag is given.
	DefaultFileName = "catalog.toml"
)

// configHome is swapped by tests.
var configHome = func() string { return xdg.ConfigHome }

// ConfigDir returns the directory catalog names are resolved against.
func ConfigDir() string {
	return filepath.Join(configHome(), AppDirName)
}

// file is the on-disk catalog layout.
type file struct {
	DefaultSelection []string     `toml:"default_selection"`
	Zones            []Descriptor `toml:"zone"`
}

// ResolvePath turns a --catalog argument into a file path.
//
// Absolute paths and paths starting with "." are used as given. Anything else
// names a file inside ConfigDir and may not climb out of it; a missing
// extension defaults to ".toml".
func ResolvePath(name string) (string, error) {
	if name == "" {
		name = DefaultFileName
	}

	if filepath.IsAbs(name) || strings.HasPrefix(name, ".") {
		return filepath.Clean(name), nil
	}

	if filepath.Ext(name) == "" {
		name += ".toml"
	}

	path, err := securejoin.SecureJoin(ConfigDir(), name)
	if err != nil {
		return "", errors.ConfigError(fmt.Sprintf("invalid catalog name %q", name), err)
	}
	return path, nil
}

// Load reads a TOML catalog file.
func Load(path string) (*Catalog, error) {
	var f file
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read catalog %s", path), err)
	}
	return build(path, f, meta)
}

// Decode parses a TOML catalog held in memory. source names it in errors
// and logs.
func Decode(data []byte, source string) (*Catalog, error) {
	var f file
	meta, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse catalog %s", source), err)
	}
	return build(source, f, meta)
}

func build(source string, f file, meta toml.MetaData) (*Catalog, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		logging.Warn("ignoring unknown catalog keys", "source", source, "keys", fmt.Sprint(undecoded))
	}

	c, err := New(f.Zones...)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", source, err)
	}

	if len(f.DefaultSelection) > 0 {
		c, err = c.WithDefaultSelection(f.DefaultSelection)
		if err != nil {
			return nil, errors.ConfigError(fmt.Sprintf("catalog %s: invalid default_selection", source), err)
		}
	}

	logging.Info("catalog loaded", "source", source, "zones", c.Len())
	return c, nil
}

// LoadNamed resolves name and loads it. An empty name means the default
// catalog file, and if that file does not exist the built-in catalog is used.
func LoadNamed(name string) (*Catalog, error) {
	path, err := ResolvePath(name)
	if err != nil {
		return nil, err
	}

	if name == "" {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			logging.Debug("no catalog file, using built-in catalog", "path", path)
			return Default(), nil
		}
	}

	return Load(path)
}

// ParseSelection splits a --zones value into ids. Ids may be separated by
// whitespace or commas and quoted the way a shell would quote them.
func ParseSelection(s string) ([]string, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return nil, errors.ValidationError(fmt.Sprintf("invalid zone list %q: %v", s, err))
	}

	ids := lo.FlatMap(words, func(w string, _ int) []string {
		return lo.Map(strings.Split(w, ","), func(id string, _ int) string {
			return strings.TrimSpace(id)
		})
	})
	return lo.Compact(ids), nil
}
