// Package pipeline orchestrates an audit: load account records, run the
// validators, score the batch, optionally narrate, and render the report.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/credlogic/metro2/internal/cache"
	"github.com/credlogic/metro2/internal/llm"
	"github.com/credlogic/metro2/internal/model"
	"github.com/credlogic/metro2/internal/score"
	"github.com/credlogic/metro2/internal/worker"
)

// Pipeline wires the scorer, cache, renderer and optional summarizer.
type Pipeline struct {
	scorer     *score.Scorer
	renderer   *Renderer
	reports    *cache.Store // nil when caching is disabled
	summarizer *llm.Summarizer
	config     *model.Config
	logger     *zap.Logger
}

// NewPipeline creates a pipeline from configuration. A nil logger is
// replaced with a no-op logger.
func NewPipeline(cfg *model.Config, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}

	var reports *cache.Store
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			dir = defaultCacheDir()
		}
		reports = cache.NewStore(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		limiter := worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM), limiter)
		if err != nil {
			logger.Warn("failed to initialize LLM provider; summaries disabled", zap.Error(err))
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		scorer:     score.NewScorer(),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		reports:    reports,
		summarizer: summarizer,
		config:     cfg,
		logger:     logger,
	}
}

// AuditAccounts validates a batch of already-loaded accounts.
func (p *Pipeline) AuditAccounts(ctx context.Context, accounts []*model.Account) *model.ComplianceReport {
	report := p.scorer.Aggregate(accounts)
	p.attachSummary(ctx, report)
	return report
}

// AuditFile loads an account file and produces its compliance report. The
// report (sans narrative) is cached against the file's content hash, so an
// unchanged file skips revalidation.
func (p *Pipeline) AuditFile(ctx context.Context, path string) (*model.ComplianceReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read account file: %w", err)
	}

	key := cache.ReportKey(data)
	if p.reports != nil {
		if report, found := p.reports.Get(key); found {
			p.logger.Debug("report cache hit", zap.String("path", path))
			report.Source = path
			p.attachSummary(ctx, report)
			return report, nil
		}
	}

	accounts, err := LoadAccounts(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("load accounts from %s: %w", path, err)
	}

	p.logger.Info("auditing accounts",
		zap.String("path", path),
		zap.Int("accounts", len(accounts)),
	)

	report := p.scorer.Aggregate(accounts)
	report.Source = path

	if p.reports != nil {
		if err := p.reports.Put(key, report); err != nil {
			p.logger.Warn("failed to cache report", zap.Error(err))
		}
	}

	p.attachSummary(ctx, report)
	return report, nil
}

// RenderReport writes the report to the requested outputs.
func (p *Pipeline) RenderReport(report *model.ComplianceReport, jsonPath, mdPath string) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		p.logger.Debug("wrote JSON report", zap.String("path", jsonPath))
	}
	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		p.logger.Debug("wrote Markdown report", zap.String("path", mdPath))
	}
	return nil
}

// attachSummary generates the optional narrative after scoring. Failures are
// logged and dropped; the narrative never blocks an audit.
func (p *Pipeline) attachSummary(ctx context.Context, report *model.ComplianceReport) {
	if p.summarizer == nil || !p.summarizer.IsEnabled() {
		return
	}
	summary, err := p.summarizer.GenerateSummary(ctx, *report)
	if err != nil {
		p.logger.Warn("LLM summary generation failed", zap.Error(err))
		return
	}
	report.LLM = summary
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "metro2")
	}
	return filepath.Join(os.TempDir(), "metro2-cache")
}
