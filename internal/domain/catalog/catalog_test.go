package catalog_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starforge/starforge-go/internal/domain/catalog"
	"github.com/starforge/starforge-go/internal/domain/shared"
)

func validBlueprint() *catalog.BlueprintSpec {
	return &catalog.BlueprintSpec{
		ID:                   "interceptor-mk1",
		Name:                 "Interceptor Mk I",
		Role:                 "fighter",
		CostPerUnit:          map[shared.Resource]int{shared.ResourceOrichalkum: 100},
		BuildDurationSeconds: 60,
		CapacityFootprint:    2,
	}
}

func TestCatalog_LookupAndDerivedValues(t *testing.T) {
	// Arrange
	cat, err := catalog.New([]*catalog.BlueprintSpec{validBlueprint()})
	require.NoError(t, err)

	// Act
	bp, err := cat.Lookup("interceptor-mk1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, bp.BuildDuration())
	assert.Equal(t, 6, bp.TotalFootprint(3))
	assert.Equal(t, map[shared.Resource]int{shared.ResourceOrichalkum: 300}, bp.TotalCost(3))
}

func TestCatalog_Lookup_Unknown(t *testing.T) {
	cat, err := catalog.New([]*catalog.BlueprintSpec{validBlueprint()})
	require.NoError(t, err)

	_, err = cat.Lookup("retired-hull")

	var unknown *catalog.ErrUnknownBlueprint
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "retired-hull", unknown.BlueprintID)
}

func TestCatalog_New_RejectsDuplicateID(t *testing.T) {
	_, err := catalog.New([]*catalog.BlueprintSpec{validBlueprint(), validBlueprint()})

	var duplicate *catalog.ErrDuplicateBlueprint
	assert.ErrorAs(t, err, &duplicate)
}

func TestCatalog_New_RejectsInvalidBlueprint(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*catalog.BlueprintSpec)
	}{
		{"missing id", func(bp *catalog.BlueprintSpec) { bp.ID = "" }},
		{"zero duration", func(bp *catalog.BlueprintSpec) { bp.BuildDurationSeconds = 0 }},
		{"negative duration", func(bp *catalog.BlueprintSpec) { bp.BuildDurationSeconds = -10 }},
		{"negative footprint", func(bp *catalog.BlueprintSpec) { bp.CapacityFootprint = -1 }},
		{"negative cost", func(bp *catalog.BlueprintSpec) {
			bp.CostPerUnit[shared.ResourceOrichalkum] = -5
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bp := validBlueprint()
			tt.mutate(bp)

			_, err := catalog.New([]*catalog.BlueprintSpec{bp})

			assert.Error(t, err)
		})
	}
}

func TestCatalog_LoadFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `blueprints:
  - id: survey-probe
    name: Survey Probe
    role: scout
    cost_per_unit:
      ORICHALKUM: 25
    build_duration_seconds: 30
    capacity_footprint: 1
  - id: cargo-hauler
    name: Cargo Hauler
    role: freighter
    cost_per_unit:
      TITANIUM: 120
      CREDITS: 50
    build_duration_seconds: 180
    capacity_footprint: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// Act
	cat, err := catalog.LoadFile(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	hauler, err := cat.Lookup("cargo-hauler")
	require.NoError(t, err)
	assert.Equal(t, 120, hauler.CostPerUnit[shared.ResourceTitanium])
	assert.Equal(t, 3*time.Minute, hauler.BuildDuration())

	// All is sorted by ID
	all := cat.All()
	require.Len(t, all, 2)
	assert.Equal(t, "cargo-hauler", all[0].ID)
	assert.Equal(t, "survey-probe", all[1].ID)
}

func TestCatalog_LoadFile_MissingFile(t *testing.T) {
	_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
