package audit

import "strings"

// Severity classifies a finding.
type Severity int

// Severity levels for findings.
const (
	// SeverityCritical indicates a broken cross-entity invariant; any
	// critical finding fails the overall audit.
	SeverityCritical Severity = iota
	// SeverityWarning indicates an advisory finding that should be
	// reviewed but does not fail the audit.
	SeverityWarning
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// ParseSeverity parses a severity name. The second return value reports
// whether the name was recognized.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "critical", "error", "issue":
		return SeverityCritical, true
	case "warning", "warn":
		return SeverityWarning, true
	default:
		return SeverityWarning, false
	}
}

// Finding is a single audit result produced by a rule.
type Finding struct {
	RuleID   string
	Severity Severity
	Entity   string // id of the entity the finding concerns
	Message  string
}

// Report aggregates the findings of a full audit run.
type Report struct {
	Issues   []Finding
	Warnings []Finding
}

// Add appends a finding to the matching severity list.
func (r *Report) Add(f Finding) {
	if f.Severity == SeverityCritical {
		r.Issues = append(r.Issues, f)
		return
	}
	r.Warnings = append(r.Warnings, f)
}

// Healthy reports whether the audit found no critical issues.
// Warnings alone do not make a report unhealthy.
func (r *Report) Healthy() bool {
	return len(r.Issues) == 0
}
