package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestPacking() ContainerPacking {
	container := NewContainer("c1", NewShape(10, 10, 10), 100)
	b1 := NewBlock("a", NewShape(2, 2, 2), 5, true, false)
	b2 := NewBlock("b", NewShape(3, 3, 3), 7, false, false)
	return ContainerPacking{
		Container: container,
		Placements: []Placement{
			{Block: b1, Corner: NewCorner(0, 0, 0), ContainerID: container.ID},
			{Block: b2, Corner: NewCorner(0, 0, 2), ContainerID: container.ID},
		},
	}
}

func TestContainerPacking_MaxTopHeightAndFrontDepth(t *testing.T) {
	cp := buildTestPacking()
	assert.Equal(t, 5.0, cp.MaxTopHeight())
	assert.Equal(t, 3.0, cp.MaxFrontDepth())
}

func TestContainerPacking_UsedVolumeAndWeight(t *testing.T) {
	cp := buildTestPacking()
	assert.Equal(t, 8.0+27.0, cp.UsedVolume())
	assert.Equal(t, 12.0, cp.UsedWeight())
}

func TestResponse_RemaindersSkipsEmptyContainers(t *testing.T) {
	packed := buildTestPacking()
	empty := ContainerPacking{Container: NewContainer("c2", NewShape(5, 5, 5), 50)}
	resp := Response{Packings: []ContainerPacking{packed, empty}}

	remainders := resp.Remainders(DefaultSettings())
	require.Len(t, remainders, 1)
	assert.Equal(t, packed.Container.ID, remainders[0].ContainerID)
}

func TestNewRun_GeneratesIDAndCreatedAt(t *testing.T) {
	req := Request{
		Blocks:     []Block{NewBlock("a", NewShape(1, 1, 1), 1, true, false)},
		Containers: []Container{NewContainer("c1", NewShape(5, 5, 5), 10)},
		Settings:   DefaultSettings(),
	}
	run := NewRun(req)
	assert.NotEmpty(t, run.ID)
	assert.False(t, run.CreatedAt.IsZero())
	assert.Nil(t, run.Response)
}
