package testutil

import (
	"embed"

	"github.com/firefly-engineering/worldclock/internal/catalog"
)

//go:embed fixtures/*.toml
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadCatalogFixture decodes a catalog fixture.
func LoadCatalogFixture(name string) (*catalog.Catalog, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	return catalog.Decode(data, name)
}

// ValidCatalog returns the valid catalog fixture.
func ValidCatalog() (*catalog.Catalog, error) {
	return LoadCatalogFixture("valid_catalog.toml")
}

// InvalidCatalog decodes the fixture with a duplicate id. The error is the
// interesting part.
func InvalidCatalog() (*catalog.Catalog, error) {
	return LoadCatalogFixture("invalid_catalog.toml")
}
