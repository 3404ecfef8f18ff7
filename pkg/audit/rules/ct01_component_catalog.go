package rules

import (
	"fmt"
	"strings"

	"github.com/greenstack-labs/plantaudit/pkg/audit"
)

// expectedComponents are component names that should exist in any complete
// catalog. Matching is a best-effort case-insensitive substring check, so a
// catalog entry "Coco-perlite (50/50)" satisfies "Coco-perlite".
var expectedComponents = []string{
	"Premium universal soil",
	"Coco substrate",
	"Perlite",
	"Vermiculite",
	"Orchid mix",
	"Charcoal",
	"Coco-perlite",
}

func init() {
	audit.Register(audit.RuleDef{
		ID:          "CT01",
		Name:        "component-catalog",
		Group:       "catalog",
		Description: "Component catalog must contain the conventional components",
		Check:       checkComponentCatalog,
	})
}

// checkComponentCatalog verifies the component catalog is populated with the
// components the soil mixes conventionally rely on. Because the match is a
// fuzzy substring heuristic, a miss is only a warning. An entirely empty
// catalog is skipped: there is nothing to check against, and the loader
// already surfaces a missing components file.
func checkComponentCatalog(ds *audit.Dataset) []audit.Finding {
	if len(ds.Components) == 0 {
		return nil
	}

	names := make([]string, 0, len(ds.Components))
	for _, comp := range ds.Components {
		if comp.Name != "" {
			names = append(names, strings.ToLower(comp.Name))
		}
	}

	var findings []audit.Finding
	for _, expected := range expectedComponents {
		if !containsSubstring(names, strings.ToLower(expected)) {
			findings = append(findings, audit.Finding{
				RuleID:   "CT01",
				Severity: audit.SeverityWarning,
				Entity:   expected,
				Message:  fmt.Sprintf("Expected component '%s' not found in component catalog", expected),
			})
		}
	}
	return findings
}

func containsSubstring(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}
