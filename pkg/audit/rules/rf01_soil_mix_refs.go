package rules

import (
	"fmt"
	"strings"

	"github.com/greenstack-labs/plantaudit/pkg/audit"
)

func init() {
	audit.Register(audit.RuleDef{
		ID:          "RF01",
		Name:        "soil-mix-refs",
		Group:       "referential",
		Description: "Plants must reference existing soil mix numbers",
		Check:       checkSoilMixRefs,
	})
}

// checkSoilMixRefs verifies plant -> soil mix referential integrity.
// A non-empty mix_number that resolves to no known soil mix is a critical
// issue. The alternative mix field is free text ("2 (aroid, wick)"), so its
// leading token is only checked with warning confidence. Empty fields are
// skipped silently.
func checkSoilMixRefs(ds *audit.Dataset) []audit.Finding {
	valid := make(map[string]struct{}, len(ds.SoilMixes))
	for _, mix := range ds.SoilMixes {
		valid[mix.Number] = struct{}{}
	}

	var findings []audit.Finding
	for _, plant := range ds.Plants {
		if num := plant.Soil.MixNumber; num != "" {
			if _, ok := valid[num]; !ok {
				findings = append(findings, audit.Finding{
					RuleID:   "RF01",
					Severity: audit.SeverityCritical,
					Entity:   plant.ID,
					Message:  fmt.Sprintf("Plant '%s' references non-existent mix #%s", plant.ID, num),
				})
			}
		}

		alt := plant.Soil.AlternativeMix
		if alt == "" {
			continue
		}
		tokens := strings.Fields(alt)
		if len(tokens) == 0 {
			continue
		}
		if _, ok := valid[tokens[0]]; !ok {
			findings = append(findings, audit.Finding{
				RuleID:   "RF01",
				Severity: audit.SeverityWarning,
				Entity:   plant.ID,
				Message:  fmt.Sprintf("Plant '%s' alternative mix '%s' might be invalid", plant.ID, alt),
			})
		}
	}
	return findings
}
