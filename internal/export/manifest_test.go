package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cratestack/cratestack/internal/model"
)

func sampleResponse() model.Response {
	container := model.NewContainer("c1", model.NewShape(100, 100, 100), 1000)
	return model.Response{
		Mode: model.ModeStrip,
		Packings: []model.ContainerPacking{{
			Container: container,
			Placements: []model.Placement{
				{Block: model.NewBlock("crate-1", model.NewShape(50, 50, 50), 10, true, false), Corner: model.NewCorner(0, 0, 0), ContainerID: container.ID},
			},
		}},
	}
}

func TestCollectLabelInfos(t *testing.T) {
	resp := sampleResponse()
	labels := CollectLabelInfos(resp)
	require.Len(t, labels, 1)
	assert.Equal(t, "crate-1", labels[0].BlockName)
	assert.Equal(t, 50.0, labels[0].Depth)
}

func TestManifest_WritesPDFFile(t *testing.T) {
	resp := sampleResponse()
	path := filepath.Join(t.TempDir(), "manifest.pdf")
	err := Manifest(path, resp, model.DefaultSettings())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestManifest_NoPackedContainersErrors(t *testing.T) {
	resp := model.Response{Packings: []model.ContainerPacking{{Container: model.NewContainer("c1", model.NewShape(10, 10, 10), 10)}}}
	err := Manifest(filepath.Join(t.TempDir(), "out.pdf"), resp, model.DefaultSettings())
	assert.Error(t, err)
}
