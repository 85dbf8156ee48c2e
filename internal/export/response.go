package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/cratestack/cratestack/internal/model"
)

// WriteResponseJSON writes a solve response to a JSON file in the
// packings/unpacked_blocks shape produced by model.Response's own tags.
func WriteResponseJSON(path string, resp model.Response) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal response: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("export: write response json: %w", err)
	}
	return nil
}

var responseHeader = []string{
	"block", "container_id", "depth", "width", "height", "weight",
	"stackable", "back", "left", "bottom",
}

// WriteResponseWorkbook writes a solve response to a single-sheet "response"
// workbook: one row per block, resolved (post-rotation) shape plus its
// back/left/bottom corner. Unpacked blocks are written with the INF sentinel
// (model.Inf) in all three corner columns, matching the oracle's own
// "no placement found" convention.
func WriteResponseWorkbook(path string, resp model.Response) error {
	f := excelize.NewFile()
	const sheet = "response"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for col, name := range responseHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	row := 2
	for _, packing := range resp.Packings {
		for _, p := range packing.Placements {
			writeResponseRow(f, sheet, row, p.Block, packing.Container.ID, p.Corner)
			row++
		}
	}
	for _, b := range resp.UnpackedBlocks {
		writeResponseRow(f, sheet, row, b, "", model.InfCorner())
		row++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: write response workbook: %w", err)
	}
	return nil
}

func writeResponseRow(f *excelize.File, sheet string, row int, b model.Block, containerID string, corner model.Corner) {
	values := []any{
		b.Name, containerID, b.Shape[0], b.Shape[1], b.Shape[2], b.Weight,
		b.Stackable, corner[0], corner[1], corner[2],
	}
	for col, v := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}
