package audit

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Auditor runs the registered rule catalog against a dataset.
type Auditor struct {
	config *Config
}

// NewAuditor creates an auditor with optional configuration.
func NewAuditor(config *Config) *Auditor {
	if config == nil {
		config = NewConfig()
	}
	return &Auditor{config: config}
}

// Run executes every enabled rule against the dataset and merges their
// findings into a report. Rules run concurrently; the merge preserves the
// catalog order and each rule's emission order, so output is deterministic.
func (a *Auditor) Run(ds *Dataset) *Report {
	report := &Report{}
	if ds == nil {
		return report
	}

	rules := All()
	results := make([][]Finding, len(rules))

	var g errgroup.Group
	for i, rule := range rules {
		if a.config.IsDisabled(rule.ID) {
			continue
		}
		g.Go(func() error {
			results[i] = a.runRule(rule, ds)
			return nil
		})
	}
	// Rules never return errors; Wait only joins the goroutines.
	_ = g.Wait()

	for i, rule := range rules {
		for _, f := range results[i] {
			f.Severity = a.config.GetSeverity(rule.ID, f.Severity)
			report.Add(f)
		}
	}
	return report
}

// runRule invokes a single rule, converting a panic into a warning so a
// misbehaving check can never abort the run.
func (a *Auditor) runRule(rule RuleDef, ds *Dataset) (findings []Finding) {
	defer func() {
		if r := recover(); r != nil {
			findings = append(findings, Finding{
				RuleID:   rule.ID,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("Rule %s (%s) failed: %v", rule.ID, rule.Name, r),
			})
		}
	}()
	return rule.Check(ds)
}
