package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContainer_VolumeAndBaseArea(t *testing.T) {
	c := NewContainer("bin-1", NewShape(10, 4, 3), 500)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, 120.0, c.Volume())
	assert.Equal(t, 40.0, c.BaseArea())
}

func TestContainerPreset_ToContainer(t *testing.T) {
	preset := NewContainerPreset("20ft Standard", 5898, 2352, 2393, 28180)
	c := preset.ToContainer()
	assert.Equal(t, preset.Name, c.Name)
	assert.Equal(t, NewShape(5898, 2352, 2393), c.Shape)
	assert.Equal(t, preset.WeightCapacity, c.WeightCapacity)
}

func TestDefaultContainerCatalog_SeededWithISOSizes(t *testing.T) {
	catalog := DefaultContainerCatalog()
	assert.Len(t, catalog.Containers, 4)
	names := catalog.Names()
	assert.Contains(t, names, "20ft Standard")
	assert.Contains(t, names, "40ft High Cube")
}

func TestContainerCatalog_FindByIDAndName(t *testing.T) {
	catalog := DefaultContainerCatalog()
	byName := catalog.FindByName("40ft Standard")
	assert.NotNil(t, byName)

	byID := catalog.FindByID(byName.ID)
	assert.NotNil(t, byID)
	assert.Equal(t, byName.ID, byID.ID)

	assert.Nil(t, catalog.FindByID("nonexistent"))
	assert.Nil(t, catalog.FindByName("nonexistent"))
}
