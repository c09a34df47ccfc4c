// Package catalog holds the fixed list of selectable time zones.
package catalog

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/firefly-engineering/worldclock/internal/errors"
)

// LocalZone is the zone identifier that resolves to the host's zone.
const LocalZone = "local"

// idRegex validates descriptor ids. Ids double as keys in the TOML file and
// as --zones arguments, so they stay short and shell friendly.
var idRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// Descriptor is a selectable time zone and its display metadata.
type Descriptor struct {
	ID          string `toml:"id" validate:"required,zoneid"`
	DisplayName string `toml:"display_name" validate:"required,max=64"`
	Zone        string `toml:"zone" validate:"required,max=128"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	//nolint:errcheck // tag name and func are static
	v.RegisterValidation("zoneid", func(fl validator.FieldLevel) bool {
		return idRegex.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks the descriptor fields. It does not consult the zone
// database; see zonefmt.Resolve for that.
func (d Descriptor) Validate() error {
	if err := validate.Struct(d); err != nil {
		return errors.ConfigError(fmt.Sprintf("invalid zone descriptor %q", d.ID), err)
	}
	return nil
}

// Catalog is an ordered, immutable set of descriptors keyed by id.
type Catalog struct {
	descriptors      []Descriptor
	index            map[string]int
	defaultSelection []string
}

// New builds a catalog in the given order. The default selection is the
// first descriptor until WithDefaultSelection says otherwise.
func New(descs ...Descriptor) (*Catalog, error) {
	if len(descs) == 0 {
		return nil, errors.ConfigError("catalog has no zones", nil)
	}

	for _, d := range descs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}

	if dups := lo.FindDuplicatesBy(descs, func(d Descriptor) string { return d.ID }); len(dups) > 0 {
		return nil, errors.ConfigError(fmt.Sprintf("duplicate zone id %q", dups[0].ID), nil)
	}

	c := &Catalog{
		descriptors:      append([]Descriptor(nil), descs...),
		index:            make(map[string]int, len(descs)),
		defaultSelection: []string{descs[0].ID},
	}
	for i, d := range c.descriptors {
		c.index[d.ID] = i
	}
	return c, nil
}

// WithDefaultSelection returns a copy of the catalog with a different
// default selection. Every id must be in the catalog and appear once.
func (c *Catalog) WithDefaultSelection(ids []string) (*Catalog, error) {
	if len(ids) == 0 {
		return nil, errors.ConfigError("default selection is empty", nil)
	}
	for _, id := range ids {
		if !c.Has(id) {
			return nil, errors.UnknownTimezoneError(id)
		}
	}
	if dups := lo.FindDuplicates(ids); len(dups) > 0 {
		return nil, errors.ConfigError(fmt.Sprintf("default selection repeats %q", dups[0]), nil)
	}

	out := *c
	out.defaultSelection = append([]string(nil), ids...)
	return &out, nil
}

// Lookup returns the descriptor for id.
func (c *Catalog) Lookup(id string) (Descriptor, error) {
	i, ok := c.index[id]
	if !ok {
		return Descriptor{}, errors.UnknownTimezoneError(id)
	}
	return c.descriptors[i], nil
}

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Position returns the zero-based catalog position of id, or -1.
func (c *Catalog) Position(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// All returns the descriptors in catalog order.
func (c *Catalog) All() []Descriptor {
	return append([]Descriptor(nil), c.descriptors...)
}

// IDs returns the descriptor ids in catalog order.
func (c *Catalog) IDs() []string {
	return lo.Map(c.descriptors, func(d Descriptor, _ int) string { return d.ID })
}

// Zones returns the distinct zone identifiers used by the catalog.
func (c *Catalog) Zones() []string {
	return lo.Uniq(lo.Map(c.descriptors, func(d Descriptor, _ int) string { return d.Zone }))
}

// Len returns the number of descriptors.
func (c *Catalog) Len() int {
	return len(c.descriptors)
}

// DefaultSelection returns the ids selected at startup.
func (c *Catalog) DefaultSelection() []string {
	return append([]string(nil), c.defaultSelection...)
}
