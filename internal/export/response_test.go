package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cratestack/cratestack/internal/model"
)

func TestWriteResponseJSON_RoundTripsPackingsShape(t *testing.T) {
	resp := sampleResponse()
	path := filepath.Join(t.TempDir(), "response.json")
	require.NoError(t, WriteResponseJSON(path, resp))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded model.Response
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Packings, 1)
	assert.Equal(t, "crate-1", decoded.Packings[0].Placements[0].Block.Name)
}

func TestWriteResponseWorkbook_WritesOneRowPerBlock(t *testing.T) {
	resp := sampleResponse()
	resp.UnpackedBlocks = []model.Block{model.NewBlock("leftover", model.NewShape(5, 5, 5), 1, true, false)}
	path := filepath.Join(t.TempDir(), "response.xlsx")
	require.NoError(t, WriteResponseWorkbook(path, resp))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("response")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + packed + unpacked
	assert.Equal(t, "crate-1", rows[1][0])
	assert.Equal(t, "leftover", rows[2][0])

	bottom, err := strconv.ParseFloat(rows[2][len(rows[2])-1], 64)
	require.NoError(t, err)
	assert.True(t, model.IsInf(bottom)) // INF sentinel in bottom column
}
