package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestTemplate_CopiesBlocksAndContainers(t *testing.T) {
	blocks := []Block{NewBlock("a", NewShape(1, 1, 1), 1, true, false)}
	containers := []Container{NewContainer("c1", NewShape(10, 10, 10), 100)}

	tmpl := NewRequestTemplate("bench", "a sample benchmark", blocks, containers, DefaultSettings())
	assert.NotEmpty(t, tmpl.ID)
	assert.Equal(t, "bench", tmpl.Name)
	require.Len(t, tmpl.Blocks, 1)
	require.Len(t, tmpl.Containers, 1)

	// Mutating the original slice must not affect the stored copy.
	blocks[0].Name = "mutated"
	assert.Equal(t, "a", tmpl.Blocks[0].Name)
}

func TestRequestTemplate_ToRequestGeneratesFreshIDs(t *testing.T) {
	blocks := []Block{NewBlock("a", NewShape(1, 1, 1), 1, true, false)}
	containers := []Container{NewContainer("c1", NewShape(10, 10, 10), 100)}
	tmpl := NewRequestTemplate("bench", "", blocks, containers, DefaultSettings())

	req := tmpl.ToRequest()
	require.Len(t, req.Blocks, 1)
	require.Len(t, req.Containers, 1)
	assert.NotEqual(t, tmpl.Blocks[0].ID, req.Blocks[0].ID)
	assert.NotEqual(t, tmpl.Containers[0].ID, req.Containers[0].ID)
}

func TestTemplateStore_AddRemoveFindByID(t *testing.T) {
	store := NewTemplateStore()
	tmpl := NewRequestTemplate("bench", "", nil, nil, DefaultSettings())
	store.Add(tmpl)

	found := store.FindByID(tmpl.ID)
	require.NotNil(t, found)
	assert.Equal(t, "bench", found.Name)

	removed := store.Remove(tmpl.ID)
	assert.True(t, removed)
	assert.Nil(t, store.FindByID(tmpl.ID))
	assert.False(t, store.Remove("nonexistent"))
}

func TestTemplateStore_Names(t *testing.T) {
	store := NewTemplateStore()
	store.Add(NewRequestTemplate("one", "", nil, nil, DefaultSettings()))
	store.Add(NewRequestTemplate("two", "", nil, nil, DefaultSettings()))
	assert.Equal(t, []string{"one", "two"}, store.Names())
}
