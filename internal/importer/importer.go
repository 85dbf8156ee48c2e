// Package importer reads block and container definitions from a two-sheet
// spreadsheet workbook ("block" and "container" sheets).
package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cratestack/cratestack/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Blocks     []model.Block
	Containers []model.Container
	Errors     []string
	Warnings   []string
}

// blockColumns maps semantic block-sheet column roles to their indices.
type blockColumns struct {
	Name, Depth, Width, Height, Weight, Stackable, RightSideUp int
}

// containerColumns maps semantic container-sheet column roles to their indices.
type containerColumns struct {
	Name, Depth, Width, Height, WeightCapacity int
}

var blockHeaderAliases = map[string][]string{
	"name":          {"block_name", "name", "block", "label"},
	"depth":         {"depth", "d"},
	"width":         {"width", "w"},
	"height":        {"height", "h"},
	"weight":        {"weight", "mass", "kg"},
	"stackable":     {"stackable"},
	"right_side_up": {"right_side_up", "rightsideup", "upright"},
}

var containerHeaderAliases = map[string][]string{
	"name":            {"container_name", "name", "container", "label"},
	"depth":           {"depth", "d"},
	"width":           {"width", "w"},
	"height":          {"height", "h"},
	"weight_capacity": {"weight_capacity", "capacity", "max_weight"},
}

func detectColumn(header []string, aliases []string) int {
	for i, cell := range header {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for _, alias := range aliases {
			if normalized == alias {
				return i
			}
		}
	}
	return -1
}

func detectBlockColumns(header []string) (blockColumns, []string) {
	cols := blockColumns{
		Name:        detectColumn(header, blockHeaderAliases["name"]),
		Depth:       detectColumn(header, blockHeaderAliases["depth"]),
		Width:       detectColumn(header, blockHeaderAliases["width"]),
		Height:      detectColumn(header, blockHeaderAliases["height"]),
		Weight:      detectColumn(header, blockHeaderAliases["weight"]),
		Stackable:   detectColumn(header, blockHeaderAliases["stackable"]),
		RightSideUp: detectColumn(header, blockHeaderAliases["right_side_up"]),
	}
	var missing []string
	if cols.Depth == -1 {
		missing = append(missing, "depth")
	}
	if cols.Width == -1 {
		missing = append(missing, "width")
	}
	if cols.Height == -1 {
		missing = append(missing, "height")
	}
	if cols.Weight == -1 {
		missing = append(missing, "weight")
	}
	return cols, missing
}

func detectContainerColumns(header []string) (containerColumns, []string) {
	cols := containerColumns{
		Name:           detectColumn(header, containerHeaderAliases["name"]),
		Depth:          detectColumn(header, containerHeaderAliases["depth"]),
		Width:          detectColumn(header, containerHeaderAliases["width"]),
		Height:         detectColumn(header, containerHeaderAliases["height"]),
		WeightCapacity: detectColumn(header, containerHeaderAliases["weight_capacity"]),
	}
	var missing []string
	if cols.Depth == -1 {
		missing = append(missing, "depth")
	}
	if cols.Width == -1 {
		missing = append(missing, "width")
	}
	if cols.Height == -1 {
		missing = append(missing, "height")
	}
	if cols.WeightCapacity == -1 {
		missing = append(missing, "weight_capacity")
	}
	return cols, missing
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseFloatCell(row []string, idx int) (float64, bool) {
	s := getCell(row, idx)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

func parseBoolCell(row []string, idx int, def bool) bool {
	s := strings.ToLower(getCell(row, idx))
	switch s {
	case "true", "yes", "y", "1":
		return true
	case "false", "no", "n", "0":
		return false
	default:
		return def
	}
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseBlockRow(row []string, cols blockColumns, rowLabel string, index int) (model.Block, string) {
	name := getCell(row, cols.Name)
	if name == "" {
		name = fmt.Sprintf("block-%d", index+1)
	}
	depth, ok := parseFloatCell(row, cols.Depth)
	if !ok || depth <= 0 {
		return model.Block{}, fmt.Sprintf("%s: invalid or missing depth", rowLabel)
	}
	width, ok := parseFloatCell(row, cols.Width)
	if !ok || width <= 0 {
		return model.Block{}, fmt.Sprintf("%s: invalid or missing width", rowLabel)
	}
	height, ok := parseFloatCell(row, cols.Height)
	if !ok || height <= 0 {
		return model.Block{}, fmt.Sprintf("%s: invalid or missing height", rowLabel)
	}
	weight, ok := parseFloatCell(row, cols.Weight)
	if !ok || weight < 0 {
		return model.Block{}, fmt.Sprintf("%s: invalid or missing weight", rowLabel)
	}
	stackable := parseBoolCell(row, cols.Stackable, true)
	rightSideUp := parseBoolCell(row, cols.RightSideUp, false)
	return model.NewBlock(name, model.NewShape(depth, width, height), weight, stackable, rightSideUp), ""
}

func parseContainerRow(row []string, cols containerColumns, rowLabel string, index int) (model.Container, string) {
	name := getCell(row, cols.Name)
	if name == "" {
		name = fmt.Sprintf("container-%d", index+1)
	}
	depth, ok := parseFloatCell(row, cols.Depth)
	if !ok || depth <= 0 {
		return model.Container{}, fmt.Sprintf("%s: invalid or missing depth", rowLabel)
	}
	width, ok := parseFloatCell(row, cols.Width)
	if !ok || width <= 0 {
		return model.Container{}, fmt.Sprintf("%s: invalid or missing width", rowLabel)
	}
	height, ok := parseFloatCell(row, cols.Height)
	if !ok || height <= 0 {
		return model.Container{}, fmt.Sprintf("%s: invalid or missing height", rowLabel)
	}
	weightCapacity, ok := parseFloatCell(row, cols.WeightCapacity)
	if !ok || weightCapacity <= 0 {
		return model.Container{}, fmt.Sprintf("%s: invalid or missing weight_capacity", rowLabel)
	}
	return model.NewContainer(name, model.NewShape(depth, width, height), weightCapacity), ""
}

// ImportWorkbook reads blocks from a sheet named "block" and containers from
// a sheet named "container" in the given .xlsx workbook.
func ImportWorkbook(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open workbook: %v", err))
		return result
	}
	defer f.Close()

	blockRows, err := sheetRows(f, "block")
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
	} else {
		blocks, errs, warns := parseBlockSheet(blockRows)
		result.Blocks = blocks
		result.Errors = append(result.Errors, errs...)
		result.Warnings = append(result.Warnings, warns...)
	}

	containerRows, err := sheetRows(f, "container")
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
	} else {
		containers, errs, warns := parseContainerSheet(containerRows)
		result.Containers = containers
		result.Errors = append(result.Errors, errs...)
		result.Warnings = append(result.Warnings, warns...)
	}

	return result
}

func sheetRows(f *excelize.File, name string) ([][]string, error) {
	sheets := f.GetSheetList()
	found := ""
	for _, s := range sheets {
		if strings.EqualFold(s, name) {
			found = s
			break
		}
	}
	if found == "" {
		return nil, fmt.Errorf("workbook has no %q sheet", name)
	}
	rows, err := f.GetRows(found)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q sheet: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%q sheet is empty", name)
	}
	return rows, nil
}

func parseBlockSheet(rows [][]string) ([]model.Block, []string, []string) {
	cols, missing := detectBlockColumns(rows[0])
	if len(missing) > 0 {
		return nil, []string{fmt.Sprintf("block sheet missing required columns: %s", strings.Join(missing, ", "))}, nil
	}
	var blocks []model.Block
	var errs, warns []string
	for i := 1; i < len(rows); i++ {
		if isEmptyRow(rows[i]) {
			continue
		}
		rowLabel := fmt.Sprintf("Row %d", i+1)
		b, errMsg := parseBlockRow(rows[i], cols, rowLabel, len(blocks))
		if errMsg != "" {
			errs = append(errs, errMsg)
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks, errs, warns
}

func parseContainerSheet(rows [][]string) ([]model.Container, []string, []string) {
	cols, missing := detectContainerColumns(rows[0])
	if len(missing) > 0 {
		return nil, []string{fmt.Sprintf("container sheet missing required columns: %s", strings.Join(missing, ", "))}, nil
	}
	var containers []model.Container
	var errs, warns []string
	for i := 1; i < len(rows); i++ {
		if isEmptyRow(rows[i]) {
			continue
		}
		rowLabel := fmt.Sprintf("Row %d", i+1)
		c, errMsg := parseContainerRow(rows[i], cols, rowLabel, len(containers))
		if errMsg != "" {
			errs = append(errs, errMsg)
			continue
		}
		containers = append(containers, c)
	}
	return containers, errs, warns
}
