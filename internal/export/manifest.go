// Package export renders a solve response into a printable load manifest:
// one cover page per used container followed by a QR-coded label per
// placed block, so a warehouse crew can scan a block and see where it
// goes without needing the 3D visualizer.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/cratestack/cratestack/internal/model"
)

// LabelInfo holds the data encoded into each block's QR code.
type LabelInfo struct {
	BlockName   string  `json:"block"`
	ContainerID string  `json:"container_id"`
	Depth       float64 `json:"depth_mm"`
	Width       float64 `json:"width_mm"`
	Height      float64 `json:"height_mm"`
	Back        float64 `json:"back_mm"`
	Left        float64 `json:"left_mm"`
	Bottom      float64 `json:"bottom_mm"`
}

// Label layout constants taken from the Avery 5160 label grid (3 columns,
// 10 rows per page), drawn on the manifest's A4 pages.
const (
	labelMarginTop  = 12.7
	labelMarginLeft = 4.8
	labelWidth      = 66.7
	labelHeight     = 25.4
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0
	labelPadding    = 2.0
)

// Manifest generates a PDF load manifest for a solve response: a cover
// page per used container with its dimensions, weight capacity and used
// weight, block count and max height, and remaining volume/weight,
// followed by QR-coded labels for every placed block.
func Manifest(path string, resp model.Response, settings model.SolveSettings) error {
	used := 0
	for _, p := range resp.Packings {
		if len(p.Placements) > 0 {
			used++
		}
	}
	if used == 0 {
		return fmt.Errorf("export: no packed containers to generate a manifest for")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	for _, packing := range resp.Packings {
		if len(packing.Placements) == 0 {
			continue
		}
		renderCoverPage(pdf, packing, settings)
	}

	labels := CollectLabelInfos(resp)
	if len(labels) == 0 {
		return pdf.OutputFileAndClose(path)
	}

	pdf.SetAutoPageBreak(false, 0)
	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}
		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols
		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight
		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("export: render label for %q: %w", label.BlockName, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

func renderCoverPage(pdf *fpdf.Fpdf, packing model.ContainerPacking, settings model.SolveSettings) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Container: %s", packing.Container.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	shape := packing.Container.Shape
	pdf.CellFormat(0, 7, fmt.Sprintf("Dimensions (D x W x H): %.0f x %.0f x %.0f mm", shape[0], shape[1], shape[2]), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Weight capacity: %.1f kg, used: %.1f kg", packing.Container.WeightCapacity, packing.UsedWeight()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Packed blocks: %d, max height: %.1f mm", len(packing.Placements), packing.MaxTopHeight()), "", 1, "L", false, 0, "")

	rem := model.Response{Packings: []model.ContainerPacking{packing}}.Remainders(settings)
	if len(rem) == 1 {
		pdf.CellFormat(0, 7, fmt.Sprintf("Remaining volume: %.0f mm3, weight: %.1f kg", rem[0].RemainingVolume, rem[0].RemainingWeight), "", 1, "L", false, 0, "")
	}
}

func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal label info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%s", info.ContainerID, info.BlockName)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	name := info.BlockName
	if pdf.GetStringWidth(name) > textW {
		for len(name) > 0 && pdf.GetStringWidth(name+"...") > textW {
			name = name[:len(name)-1]
		}
		name += "..."
	}
	pdf.CellFormat(textW, 4.5, name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.0f x %.0f x %.0f mm", info.Depth, info.Width, info.Height)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pos := fmt.Sprintf("@ (%.0f, %.0f, %.0f)", info.Back, info.Left, info.Bottom)
	pdf.CellFormat(textW, 3, pos, "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label information from a solve response, for
// use in tests or alternative export formats.
func CollectLabelInfos(resp model.Response) []LabelInfo {
	var labels []LabelInfo
	for _, packing := range resp.Packings {
		for _, p := range packing.Placements {
			labels = append(labels, LabelInfo{
				BlockName:   p.Block.Name,
				ContainerID: packing.Container.ID,
				Depth:       p.Block.Shape[0],
				Width:       p.Block.Shape[1],
				Height:      p.Block.Shape[2],
				Back:        p.Corner[0],
				Left:        p.Corner[1],
				Bottom:      p.Corner[2],
			})
		}
	}
	return labels
}
