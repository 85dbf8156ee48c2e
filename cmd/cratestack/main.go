// cratestack — 3-D cargo packing benchmark CLI
//
// Solves strip-packing (single container, minimize packed height) and bin-packing
// (many containers, minimize containers used) requests read from a
// two-sheet spreadsheet of blocks and containers, and writes a QR-coded
// load manifest PDF.
//
// Build:
//   go build -o cratestack ./cmd/cratestack
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cratestack/cratestack/internal/engine"
	"github.com/cratestack/cratestack/internal/export"
	"github.com/cratestack/cratestack/internal/importer"
	"github.com/cratestack/cratestack/internal/model"
	"github.com/cratestack/cratestack/internal/project"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "solve":
		runSolve(os.Args[2:])
	case "import":
		runImport(os.Args[2:])
	case "compare":
		runCompare(os.Args[2:])
	case "catalog":
		runCatalog(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: cratestack <solve|import|compare|catalog> [options]")
}

func runImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	in := fs.String("in", "", "path to the blocks/containers workbook (.xlsx)")
	fs.Parse(args)
	if *in == "" {
		log.Fatal("import: -in is required")
	}

	result := importer.ImportWorkbook(*in)
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", e)
		}
		log.Fatalf("import: %d row error(s)", len(result.Errors))
	}
	fmt.Printf("parsed %d block(s), %d container(s)\n", len(result.Blocks), len(result.Containers))
}

func runSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	in := fs.String("in", "", "path to the blocks/containers workbook (.xlsx)")
	mode := fs.String("mode", "strip", "strip or bin")
	allowRotate := fs.Bool("allow-rotate", true, "allow block rotation")
	maxIter := fs.Int("max-iter", 0, "override annealer iteration budget (0 = default)")
	temperature := fs.Float64("temperature", -1, "override annealer temperature (negative = default)")
	seed := fs.Int64("seed", 0, "random seed (0 = default)")
	out := fs.String("out", "", "path to write the load manifest PDF (empty = skip export)")
	respOut := fs.String("response-out", "", "path to write the response (.json or .xlsx, empty = skip)")
	fs.Parse(args)

	if *in == "" {
		log.Fatal("solve: -in is required")
	}
	parsedMode, err := parseMode(*mode)
	if err != nil {
		log.Fatalf("solve: %v", err)
	}

	result := importer.ImportWorkbook(*in)
	if len(result.Errors) > 0 {
		log.Fatalf("solve: workbook has %d row error(s), see: %s", len(result.Errors), strings.Join(result.Errors, "; "))
	}

	settings := model.DefaultSettings()
	settings.Mode = parsedMode
	settings.AllowRotate = *allowRotate
	if *maxIter > 0 {
		settings.MaxIter = *maxIter
	}
	if *temperature >= 0 {
		settings.Temperature = *temperature
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	req := model.Request{Blocks: result.Blocks, Containers: result.Containers, Settings: settings}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	resp, err := engine.New(req).Solve(ctx, func(iter int, optScore float64) {
		fmt.Printf("\riteration %d, best score %.2f", iter, optScore)
	})
	fmt.Println()
	if err != nil {
		log.Fatalf("solve: %v", err)
	}

	reportSummary(resp)

	if *out != "" {
		if err := export.Manifest(*out, resp, settings); err != nil {
			log.Fatalf("solve: writing manifest: %v", err)
		}
		fmt.Printf("wrote manifest to %s\n", *out)
	}

	if *respOut != "" {
		if err := writeResponse(*respOut, resp); err != nil {
			log.Fatalf("solve: writing response: %v", err)
		}
		fmt.Printf("wrote response to %s\n", *respOut)
	}

	appendRecent(*in)
}

func runCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	in := fs.String("in", "", "path to the blocks/containers workbook (.xlsx)")
	mode := fs.String("mode", "strip", "strip or bin")
	fs.Parse(args)

	if *in == "" {
		log.Fatal("compare: -in is required")
	}
	parsedMode, err := parseMode(*mode)
	if err != nil {
		log.Fatalf("compare: %v", err)
	}

	result := importer.ImportWorkbook(*in)
	if len(result.Errors) > 0 {
		log.Fatalf("compare: workbook has %d row error(s)", len(result.Errors))
	}

	base := model.DefaultSettings()
	base.Mode = parsedMode
	scenarios := engine.BuildDefaultScenarios(base)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	results, err := engine.CompareScenarios(ctx, scenarios, result.Blocks, result.Containers)
	if err != nil {
		log.Fatalf("compare: %v", err)
	}

	for _, r := range results {
		fmt.Printf("%-24s score=%.2f containers_used=%d unpacked=%d\n", r.Scenario.Name, r.Score, r.ContainersUsed, r.UnpackedCount)
	}
}

func runCatalog(args []string) {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	fs.Parse(args)

	catalog, path, err := project.LoadOrCreateCatalog()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	fmt.Printf("container catalog (%s):\n", path)
	for _, c := range catalog.Containers {
		fmt.Printf("  %-20s %.0fx%.0fx%.0f mm, %.0f kg capacity\n", c.Name, c.Depth, c.Width, c.Height, c.WeightCapacity)
	}
}

func writeResponse(path string, resp model.Response) error {
	switch {
	case strings.HasSuffix(path, ".xlsx"):
		return export.WriteResponseWorkbook(path, resp)
	case strings.HasSuffix(path, ".json"):
		return export.WriteResponseJSON(path, resp)
	default:
		return fmt.Errorf("unrecognized response output extension for %q (want .json or .xlsx)", path)
	}
}

func parseMode(s string) (model.Mode, error) {
	switch strings.ToLower(s) {
	case "strip":
		return model.ModeStrip, nil
	case "bin":
		return model.ModeBin, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want strip or bin)", s)
	}
}

func reportSummary(resp model.Response) {
	used := 0
	for _, p := range resp.Packings {
		if len(p.Placements) > 0 {
			used++
		}
	}
	fmt.Printf("mode=%s score=%.2f containers_used=%d unpacked_blocks=%d\n", resp.Mode, resp.Score, used, len(resp.UnpackedBlocks))
}

func appendRecent(workbookPath string) {
	cfgPath := project.DefaultConfigPath()
	cfg, err := project.LoadAppConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: loading app config: %v\n", err)
		return
	}
	cfg.RecentRequests = append([]string{workbookPath}, cfg.RecentRequests...)
	if len(cfg.RecentRequests) > 10 {
		cfg.RecentRequests = cfg.RecentRequests[:10]
	}
	if err := project.SaveAppConfig(cfgPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: saving app config: %v\n", err)
	}
}
