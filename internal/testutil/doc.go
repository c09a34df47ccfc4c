// Package testutil provides test fixtures and utilities.
//
// Catalog fixtures are embedded using go:embed:
//
//	fixtures/valid_catalog.toml
//	fixtures/invalid_catalog.toml
//	fixtures/bad_zone_catalog.toml
//
// ValidCatalog and InvalidCatalog decode them, and LoadFixture returns the
// raw bytes for custom parsing.
//
// NewTestEnv installs an application with a fake clock pinned to a known
// instant and a private config directory:
//
//	func TestShow(t *testing.T) {
//	    env := testutil.NewTestEnv(t)
//	    env.WriteCatalog("travel", testutil.MustFixture(t, "valid_catalog.toml"))
//	    env.Clock.Advance(time.Minute)
//	    ...
//	}
package testutil
