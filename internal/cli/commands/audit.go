package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/greenstack-labs/plantaudit/internal/cli/config"
	"github.com/greenstack-labs/plantaudit/internal/cli/output"
	"github.com/greenstack-labs/plantaudit/internal/loader"
	"github.com/greenstack-labs/plantaudit/pkg/audit"
	_ "github.com/greenstack-labs/plantaudit/pkg/audit/rules" // register audit rules
)

// AuditOptions holds options for the audit command.
type AuditOptions struct {
	DataDir  string   // Database directory (overrides config)
	Format   string   // Output format: text, json
	Disable  []string // Rule IDs to disable
	Severity []string // Severity overrides, e.g. NR01=warning
}

// NewAuditCommand creates the audit command.
func NewAuditCommand() *cobra.Command {
	opts := &AuditOptions{}
	cmd := &cobra.Command{
		Use:   "audit [data-dir]",
		Short: "Audit the plant database for consistency",
		Long: `Run all consistency rules against the plant database.

Loads the YAML files from the data directory, runs the full rule catalog,
and prints a report. Critical issues (broken references, missing water
requirement pairings, reversed numeric ranges, inconsistent group
assignments) fail the run with exit code 1; warnings are advisory and
never affect the exit status.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Plain text
  - JSON: Machine-readable format`,
		Example: `  # Audit the current directory
  plantaudit audit

  # Audit a specific database directory
  plantaudit audit ./database

  # Output as JSON
  plantaudit audit --format json

  # Disable specific rules
  plantaudit audit --disable CT01,DP01

  # Demote a rule's findings to warnings
  plantaudit audit --override NR01=warning`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.DataDir = args[0]
			}
			return runAudit(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Severity, "override", nil, "Severity overrides (RULE=critical|warning)")

	return cmd
}

// AuditOutput is the JSON output for the audit command.
type AuditOutput struct {
	Issues   []AuditFinding `json:"issues"`
	Warnings []AuditFinding `json:"warnings"`
	Healthy  bool           `json:"healthy"`
	Summary  AuditSummary   `json:"summary"`
}

// AuditFinding is a single finding in JSON output.
type AuditFinding struct {
	RuleID  string `json:"rule_id"`
	Entity  string `json:"entity,omitempty"`
	Message string `json:"message"`
}

// AuditSummary contains the finding counts.
type AuditSummary struct {
	Issues   int `json:"issues"`
	Warnings int `json:"warnings"`
}

func runAudit(cmd *cobra.Command, opts *AuditOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = cfg.DataDir
	}

	ds, loadErrs := loader.Load(dataDir)

	auditCfg := buildAuditConfig(cfg, opts)
	auditor := audit.NewAuditor(auditCfg)
	report := auditor.Run(ds)

	// Load failures are critical regardless of which rules run; they go in
	// front so a broken file is the first thing in the report.
	if len(loadErrs) > 0 {
		loadIssues := make([]audit.Finding, 0, len(loadErrs))
		for _, le := range loadErrs {
			loadIssues = append(loadIssues, audit.Finding{
				Severity: audit.SeverityCritical,
				Entity:   le.File,
				Message:  fmt.Sprintf("Cannot load %s: %v", le.File, le.Err),
			})
		}
		report.Issues = append(loadIssues, report.Issues...)
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(buildAuditOutput(report)); err != nil {
			return err
		}
	} else {
		renderAuditReport(r, report)
	}

	if !report.Healthy() {
		return fmt.Errorf("audit found %d critical issues", len(report.Issues))
	}
	return nil
}

func buildAuditConfig(cfg *config.Config, opts *AuditOptions) *audit.Config {
	auditCfg := audit.NewConfig()

	// Project config first (lower precedence)
	if cfg != nil && cfg.Audit != nil {
		for _, id := range cfg.Audit.Disabled {
			auditCfg.Disable(strings.TrimSpace(id))
		}
		for id, sev := range cfg.Audit.Severity {
			if s, ok := audit.ParseSeverity(sev); ok {
				auditCfg.SetSeverity(id, s)
			}
		}
	}

	// CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		auditCfg.Disable(strings.TrimSpace(id))
	}
	for _, override := range opts.Severity {
		id, sev, found := strings.Cut(override, "=")
		if !found {
			continue
		}
		if s, ok := audit.ParseSeverity(strings.TrimSpace(sev)); ok {
			auditCfg.SetSeverity(strings.TrimSpace(id), s)
		}
	}

	return auditCfg
}

func buildAuditOutput(report *audit.Report) *AuditOutput {
	out := &AuditOutput{
		Issues:   make([]AuditFinding, 0, len(report.Issues)),
		Warnings: make([]AuditFinding, 0, len(report.Warnings)),
		Healthy:  report.Healthy(),
		Summary: AuditSummary{
			Issues:   len(report.Issues),
			Warnings: len(report.Warnings),
		},
	}
	for _, f := range report.Issues {
		out.Issues = append(out.Issues, AuditFinding{RuleID: f.RuleID, Entity: f.Entity, Message: f.Message})
	}
	for _, f := range report.Warnings {
		out.Warnings = append(out.Warnings, AuditFinding{RuleID: f.RuleID, Entity: f.Entity, Message: f.Message})
	}
	return out
}

const reportRule = "============================================================"

func renderAuditReport(r *output.Renderer, report *audit.Report) {
	r.Println(reportRule)
	r.Println(r.Styles().Header.Render("AUDIT REPORT"))
	r.Println(reportRule)
	r.Println("")

	if report.Healthy() && len(report.Warnings) == 0 {
		r.Println(r.Styles().Success.Render("[OK] NO ISSUES FOUND - Database is consistent!"))
		r.Println("")
		return
	}

	if len(report.Issues) > 0 {
		r.Printf("%s\n\n", r.Styles().Error.Render(fmt.Sprintf("[!] CRITICAL ISSUES (%d):", len(report.Issues))))
		for _, f := range report.Issues {
			r.Printf("  [!] %s\n", f.Message)
		}
		r.Println("")
	}

	if len(report.Warnings) > 0 {
		r.Printf("%s\n\n", r.Styles().Warning.Render(fmt.Sprintf("[W] WARNINGS (%d):", len(report.Warnings))))
		for _, f := range report.Warnings {
			r.Printf("  [W] %s\n", f.Message)
		}
		r.Println("")
	}

	r.Println(reportRule)
	r.Printf("Summary: %d issues, %d warnings\n", len(report.Issues), len(report.Warnings))
	r.Println(reportRule)
}
