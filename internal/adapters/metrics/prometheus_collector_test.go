package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRegistryEnablesCollection(t *testing.T) {
	// Arrange - collection is off until the registry exists
	t.Cleanup(func() { Registry = nil })
	Registry = nil
	assert.False(t, IsEnabled())

	// Act
	InitRegistry()
	collector := NewHangarCollector()
	collector.UpdateCapacity(1, 2, 3)

	// Assert - the collector registered and its gauges surface on gather
	assert.True(t, IsEnabled())
	families, err := Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
