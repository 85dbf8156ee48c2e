package importer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, blockRows, containerRows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	f.NewSheet("block")
	for r, row := range blockRows {
		for c, val := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			f.SetCellValue("block", cell, val)
		}
	}
	f.NewSheet("container")
	for r, row := range containerRows {
		for c, val := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			f.SetCellValue("container", cell, val)
		}
	}
	f.DeleteSheet("Sheet1")

	path := filepath.Join(t.TempDir(), "workbook.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestImportWorkbook_HappyPath(t *testing.T) {
	blockRows := [][]string{
		{"block_name", "depth", "width", "height", "weight", "stackable", "right_side_up"},
		{"crate-1", "50", "50", "50", "10", "true", "false"},
		{"crate-2", "40", "60", "30", "8", "false", "true"},
	}
	containerRows := [][]string{
		{"container_name", "depth", "width", "height", "weight_capacity"},
		{"c1", "200", "200", "200", "5000"},
	}
	path := writeWorkbook(t, blockRows, containerRows)

	result := ImportWorkbook(path)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Blocks, 2)
	require.Len(t, result.Containers, 1)

	assert.Equal(t, "crate-1", result.Blocks[0].Name)
	assert.True(t, result.Blocks[0].Stackable)
	assert.False(t, result.Blocks[1].Stackable)
	assert.True(t, result.Blocks[1].RightSideUp)
	assert.Equal(t, "c1", result.Containers[0].Name)
	assert.Equal(t, 5000.0, result.Containers[0].WeightCapacity)
}

func TestImportWorkbook_MissingRequiredColumn(t *testing.T) {
	blockRows := [][]string{
		{"block_name", "depth", "width"}, // missing height, weight
		{"crate-1", "50", "50"},
	}
	path := writeWorkbook(t, blockRows, [][]string{{"container_name", "depth", "width", "height", "weight_capacity"}, {"c1", "1", "1", "1", "1"}})

	result := ImportWorkbook(path)
	require.NotEmpty(t, result.Errors)
	assert.Empty(t, result.Blocks)
}

func TestImportWorkbook_SkipsEmptyRows(t *testing.T) {
	blockRows := [][]string{
		{"block_name", "depth", "width", "height", "weight"},
		{"crate-1", "50", "50", "50", "10"},
		{"", "", "", "", ""},
		{"crate-2", "20", "20", "20", "5"},
	}
	containerRows := [][]string{
		{"container_name", "depth", "width", "height", "weight_capacity"},
		{"c1", "100", "100", "100", "1000"},
	}
	path := writeWorkbook(t, blockRows, containerRows)

	result := ImportWorkbook(path)
	assert.Empty(t, result.Errors)
	assert.Len(t, result.Blocks, 2)
}
