package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/credlogic/metro2/internal/model"
)

// Auditor audits one account file into a compliance report.
type Auditor interface {
	AuditFile(ctx context.Context, path string) (*model.ComplianceReport, error)
}

// AuditJob audits a single account file.
type AuditJob struct {
	Path    string
	Auditor Auditor
}

// Execute runs the audit.
func (j *AuditJob) Execute(ctx context.Context) Result {
	report, err := j.Auditor.AuditFile(ctx, j.Path)
	return &AuditResult{
		Path:   j.Path,
		Report: report,
		Error:  err,
	}
}

// AuditResult is the outcome of one audit job.
type AuditResult struct {
	Path   string
	Report *model.ComplianceReport
	Error  error
}

// GetError returns the error from the audit result.
func (r *AuditResult) GetError() error {
	return r.Error
}

// BatchProcessor audits multiple account files concurrently.
type BatchProcessor struct {
	auditor     Auditor
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(auditor Auditor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		auditor:     auditor,
		concurrency: concurrency,
	}
}

// ProcessPaths audits the given account files concurrently.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*AuditResult {
	if len(paths) == 0 {
		return []*AuditResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&AuditJob{Path: path, Auditor: b.auditor})
	}

	results := pool.Wait()

	auditResults := make([]*AuditResult, len(results))
	for i, result := range results {
		auditResults[i] = result.(*AuditResult)
	}
	return auditResults
}

// ProcessList reads account file paths from a list file and audits them.
func (b *BatchProcessor) ProcessList(ctx context.Context, listPath string) ([]*AuditResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read path list: %w", err)
	}
	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads file paths from a list file (one per line); blank
// lines and #-comments are skipped, duplicates dropped.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return paths, nil
}

// ExpandPaths resolves the batch command arguments: directories expand to the
// account files they contain, regular files pass through.
func ExpandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("read dir %s: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(entry.Name())) {
			case ".yaml", ".yml", ".json":
				paths = append(paths, filepath.Join(arg, entry.Name()))
			}
		}
	}
	return paths, nil
}
