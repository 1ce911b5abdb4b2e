package catalog

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Catalog is the static table of buildable blueprints. It is loaded once at
// startup and read-only afterwards, so lookups need no locking.
type Catalog struct {
	blueprints map[string]*BlueprintSpec
}

// catalogFile is the on-disk YAML shape
type catalogFile struct {
	Blueprints []*BlueprintSpec `yaml:"blueprints" validate:"required,min=1,dive"`
}

// New creates a catalog from the given blueprints, validating each entry
func New(blueprints []*BlueprintSpec) (*Catalog, error) {
	validate := validator.New()

	byID := make(map[string]*BlueprintSpec, len(blueprints))
	for _, bp := range blueprints {
		if err := validate.Struct(bp); err != nil {
			return nil, fmt.Errorf("invalid blueprint %q: %w", bp.ID, err)
		}
		if _, exists := byID[bp.ID]; exists {
			return nil, &ErrDuplicateBlueprint{BlueprintID: bp.ID}
		}
		byID[bp.ID] = bp
	}

	return &Catalog{blueprints: byID}, nil
}

// LoadFile loads and validates a catalog from a YAML file
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return New(file.Blueprints)
}

// Lookup returns the blueprint for the given ID, or an ErrUnknownBlueprint
func (c *Catalog) Lookup(blueprintID string) (*BlueprintSpec, error) {
	bp, ok := c.blueprints[blueprintID]
	if !ok {
		return nil, &ErrUnknownBlueprint{BlueprintID: blueprintID}
	}
	return bp, nil
}

// All returns every blueprint sorted by ID
func (c *Catalog) All() []*BlueprintSpec {
	out := make([]*BlueprintSpec, 0, len(c.blueprints))
	for _, bp := range c.blueprints {
		out = append(out, bp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of blueprints in the catalog
func (c *Catalog) Len() int {
	return len(c.blueprints)
}
