package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/credlogic/metro2/internal/pipeline"
	"github.com/credlogic/metro2/internal/worker"
)

var (
	batchConcurrency int
	batchOutputDir   string
	batchFromList    string
	batchNoCache     bool
	batchTimeout     time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <path>...",
	Short: "Audit multiple account files concurrently",
	Long: `Audit several account files (or directories of account files) in parallel
and write a JSON and Markdown report for each into the output directory.

Examples:
  metro2 batch accounts/ --concurrency 8
  metro2 batch jan.yaml feb.yaml mar.yaml --output-dir ./reports
  metro2 batch --from-list files.txt`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", runtime.NumCPU(), "number of concurrent audits")
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "./metro2-reports", "directory for per-file reports")
	batchCmd.Flags().StringVar(&batchFromList, "from-list", "", "read account file paths from a list file (one per line)")
	batchCmd.Flags().BoolVar(&batchNoCache, "no-cache", false, "bypass the report cache")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "batch timeout")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && batchFromList == "" {
		return fmt.Errorf("provide account file paths or --from-list")
	}

	paths, err := resolveBatchPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no account files found")
	}

	cfg := loadConfig()
	if batchNoCache {
		cfg.Cache.Enabled = false
	}
	if batchConcurrency > 0 {
		cfg.Concurrency.Workers = batchConcurrency
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := os.MkdirAll(batchOutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Auditing %d account files with %d workers...\n", len(paths), cfg.Concurrency.Workers)
	start := time.Now()

	p := pipeline.NewPipeline(cfg, logger)
	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)
	results := processor.ProcessPaths(ctx, paths)

	succeeded, failed := 0, 0
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════")
	for _, result := range results {
		if result.Error != nil {
			failed++
			fmt.Printf("  ✗ %s: %v\n", result.Path, result.Error)
			continue
		}
		succeeded++
		fmt.Printf("  ✓ %s (score: %d/100)\n", result.Path, result.Report.ComplianceScore)

		base := reportBaseName(result.Path)
		jsonPath := filepath.Join(batchOutputDir, base+".json")
		mdPath := filepath.Join(batchOutputDir, base+".md")
		if err := p.RenderReport(result.Report, jsonPath, mdPath); err != nil {
			fmt.Fprintf(os.Stderr, "  warning: write reports for %s: %v\n", result.Path, err)
		}
	}
	fmt.Println("═══════════════════════════════════════════")
	fmt.Printf("Done: %d succeeded, %d failed in %s\n", succeeded, failed, time.Since(start).Round(time.Millisecond))
	fmt.Printf("Reports written to %s\n", batchOutputDir)

	if failed > 0 {
		return fmt.Errorf("%d of %d audits failed", failed, len(results))
	}
	return nil
}

func resolveBatchPaths(args []string) ([]string, error) {
	var paths []string
	if batchFromList != "" {
		listed, err := worker.ReadPathsFromFile(batchFromList)
		if err != nil {
			return nil, err
		}
		paths = append(paths, listed...)
	}
	expanded, err := worker.ExpandPaths(args)
	if err != nil {
		return nil, err
	}
	return append(paths, expanded...), nil
}

// reportBaseName derives a filesystem-safe report name from an input path.
func reportBaseName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" {
		base = "report"
	}
	return base
}
