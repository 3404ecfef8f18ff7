package rules

import (
	"fmt"

	"github.com/greenstack-labs/plantaudit/pkg/audit"
)

func init() {
	audit.Register(audit.RuleDef{
		ID:          "WK01",
		Name:        "wick-method",
		Group:       "watering",
		Description: "Wick watering recommendation must agree with the watering method",
		Check:       checkWickMethod,
	})
}

// checkWickMethod compares the tri-state wick recommendation against the
// free-text watering method. A method naming both manual and wick watering
// is a legitimate combination and is not flagged against recommended=false.
// An absent recommendation produces no finding. The keyword match is a
// best-effort heuristic, so this rule only ever warns.
func checkWickMethod(ds *audit.Dataset) []audit.Finding {
	var findings []audit.Finding
	for _, plant := range ds.Plants {
		rec := plant.WickWatering.Recommended
		if rec == nil {
			continue
		}
		method := plant.Watering.Method

		if *rec && !mentionsWick(method) {
			findings = append(findings, audit.Finding{
				RuleID:   "WK01",
				Severity: audit.SeverityWarning,
				Entity:   plant.ID,
				Message:  fmt.Sprintf("Plant '%s': wick watering recommended but method is '%s'", plant.ID, method),
			})
		}

		if !*rec && mentionsWick(method) && !mentionsManual(method) {
			findings = append(findings, audit.Finding{
				RuleID:   "WK01",
				Severity: audit.SeverityWarning,
				Entity:   plant.ID,
				Message:  fmt.Sprintf("Plant '%s': wick watering not recommended but method '%s' includes wick", plant.ID, method),
			})
		}
	}
	return findings
}
