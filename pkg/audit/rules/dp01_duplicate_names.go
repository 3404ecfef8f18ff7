package rules

import (
	"fmt"

	"github.com/greenstack-labs/plantaudit/pkg/audit"
)

func init() {
	audit.Register(audit.RuleDef{
		ID:          "DP01",
		Name:        "duplicate-names",
		Group:       "naming",
		Description: "Plant display names must be unique",
		Check:       checkDuplicateNames,
	})
}

// checkDuplicateNames walks the plant collection in insertion order. The
// first plant carrying a display name is canonical; every later plant with
// the same name is flagged, citing both ids.
func checkDuplicateNames(ds *audit.Dataset) []audit.Finding {
	var findings []audit.Finding
	seen := make(map[string]string, len(ds.Plants))
	for _, plant := range ds.Plants {
		if first, ok := seen[plant.Name]; ok {
			findings = append(findings, audit.Finding{
				RuleID:   "DP01",
				Severity: audit.SeverityWarning,
				Entity:   plant.ID,
				Message:  fmt.Sprintf("Duplicate plant name '%s': %s and %s", plant.Name, first, plant.ID),
			})
			continue
		}
		seen[plant.Name] = plant.ID
	}
	return findings
}
