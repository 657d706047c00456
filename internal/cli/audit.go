package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/credlogic/metro2/internal/model"
	"github.com/credlogic/metro2/internal/pipeline"
)

var (
	auditJSONOut  string
	auditMDOut    string
	auditNoCache  bool
	auditNoFooter bool
	auditLLM      bool
	auditProvider string
	auditModel    string
	auditBaseURL  string
	auditTimeout  time.Duration
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit <account-file>",
	Short: "Audit a single account file for CRRG 2025 compliance",
	Long: `Audit one YAML or JSON account file against the Metro 2 CRRG 2025 field
validation rules and write a scored compliance report.

Examples:
  metro2 audit accounts.yaml
  metro2 audit accounts.json --json report.json --md report.md
  metro2 audit accounts.yaml --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVar(&auditJSONOut, "json", "report.json", "JSON report output path (empty to skip)")
	auditCmd.Flags().StringVar(&auditMDOut, "md", "", "Markdown report output path (empty to skip)")
	auditCmd.Flags().BoolVar(&auditNoCache, "no-cache", false, "bypass the report cache")
	auditCmd.Flags().BoolVar(&auditNoFooter, "no-footer", false, "omit the report footer")
	auditCmd.Flags().BoolVar(&auditLLM, "llm", false, "attach an LLM narrative summary to the report")
	auditCmd.Flags().StringVar(&auditProvider, "llm-provider", "openai", "LLM provider")
	auditCmd.Flags().StringVar(&auditModel, "llm-model", "", "LLM model (provider default when empty)")
	auditCmd.Flags().StringVar(&auditBaseURL, "llm-base-url", "", "base URL for OpenAI-compatible runtimes")
	auditCmd.Flags().DurationVar(&auditTimeout, "timeout", 5*time.Minute, "audit timeout")

	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg := loadConfig()
	applyAuditFlags(cfg)

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Auditing: %s\n", path)
	}

	p := pipeline.NewPipeline(cfg, logger)
	report, err := p.AuditFile(ctx, path)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	if err := p.RenderReport(report, auditJSONOut, auditMDOut); err != nil {
		return err
	}

	printReportSummary(report)
	if auditJSONOut != "" {
		fmt.Printf("JSON report: %s\n", auditJSONOut)
	}
	if auditMDOut != "" {
		fmt.Printf("Markdown report: %s\n", auditMDOut)
	}
	return nil
}

// applyAuditFlags overlays the audit command flags onto the loaded config.
func applyAuditFlags(cfg *model.Config) {
	if auditNoCache {
		cfg.Cache.Enabled = false
	}
	if auditNoFooter {
		cfg.Output.IncludeFooter = false
	}
	if auditLLM {
		cfg.LLM.Provider = auditProvider
		if auditModel != "" {
			cfg.LLM.Model = auditModel
		}
		if auditBaseURL != "" {
			cfg.LLM.BaseURL = auditBaseURL
		}
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}
}

func printReportSummary(report *model.ComplianceReport) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════")
	fmt.Printf("  Compliance score: %d/100\n", report.ComplianceScore)
	fmt.Printf("  2025 compliant:   %t\n", report.Compliant2025)
	fmt.Printf("  Accounts:         %d (%d with issues)\n",
		report.Summary.TotalAccounts, report.Summary.AccountsWithIssues)
	fmt.Printf("  Violations:       %d (high %d, medium %d, low %d)\n",
		report.Summary.TotalViolations,
		report.Summary.HighSeverity,
		report.Summary.MediumSeverity,
		report.Summary.LowSeverity)
	fmt.Println("═══════════════════════════════════════════")
	fmt.Println()
}
