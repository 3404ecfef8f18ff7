package rules

import (
	"fmt"

	"github.com/greenstack-labs/plantaudit/pkg/audit"
)

func init() {
	audit.Register(audit.RuleDef{
		ID:          "RF02",
		Name:        "water-pairing",
		Group:       "referential",
		Description: "Every plant must have exactly one individual water requirement",
		Check:       checkWaterPairing,
	})
}

// checkWaterPairing computes the symmetric difference between the plant id
// set and the water requirement id set. A plant without a requirement entry
// is a critical issue; a requirement for an unknown plant is advisory.
// Findings follow the collections' insertion order.
func checkWaterPairing(ds *audit.Dataset) []audit.Finding {
	plantIDs := make(map[string]struct{}, len(ds.Plants))
	for _, plant := range ds.Plants {
		plantIDs[plant.ID] = struct{}{}
	}
	reqIDs := make(map[string]struct{}, len(ds.WaterRequirements))
	for _, req := range ds.WaterRequirements {
		reqIDs[req.ID] = struct{}{}
	}

	var findings []audit.Finding
	for _, plant := range ds.Plants {
		if _, ok := reqIDs[plant.ID]; !ok {
			findings = append(findings, audit.Finding{
				RuleID:   "RF02",
				Severity: audit.SeverityCritical,
				Entity:   plant.ID,
				Message:  fmt.Sprintf("Plant '%s' missing water requirements", plant.ID),
			})
		}
	}
	for _, req := range ds.WaterRequirements {
		if _, ok := plantIDs[req.ID]; !ok {
			findings = append(findings, audit.Finding{
				RuleID:   "RF02",
				Severity: audit.SeverityWarning,
				Entity:   req.ID,
				Message:  fmt.Sprintf("Water requirements exist for unknown plant '%s'", req.ID),
			})
		}
	}
	return findings
}
