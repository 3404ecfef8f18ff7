package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/greenstack-labs/plantaudit/internal/cli/output"
	"github.com/greenstack-labs/plantaudit/pkg/audit"
	_ "github.com/greenstack-labs/plantaudit/pkg/audit/rules" // register audit rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group  string // Filter by group
	Format string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the audit rule catalog",
		Long: `List all registered audit rules.

Rules are organized by group (referential, catalog, watering, naming).
Rule IDs can be used with 'audit --disable' and 'audit --override'.`,
		Example: `  # List all rules
  plantaudit rules

  # List referential rules only
  plantaudit rules --group referential

  # Output as JSON
  plantaudit rules --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

// RuleInfo is the JSON shape for a single rule.
type RuleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Description string `json:"description"`
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rules := audit.All()
	if opts.Group != "" {
		rules = audit.GetByGroup(opts.Group)
	}

	if r.EffectiveMode() == output.ModeJSON {
		infos := make([]RuleInfo, 0, len(rules))
		for _, rule := range rules {
			infos = append(infos, RuleInfo{
				ID:          rule.ID,
				Name:        rule.Name,
				Group:       rule.Group,
				Description: rule.Description,
			})
		}
		return r.JSON(infos)
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Group", "Description"})
	for _, rule := range rules {
		t.AppendRow(table.Row{rule.ID, rule.Name, rule.Group, rule.Description})
	}
	t.Render()
	r.Printf("%d rules\n", len(rules))
	return nil
}
