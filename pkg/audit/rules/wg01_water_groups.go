package rules

import (
	"fmt"
	"strings"

	"github.com/greenstack-labs/plantaudit/pkg/audit"
)

func init() {
	audit.Register(audit.RuleDef{
		ID:          "WG01",
		Name:        "water-groups",
		Group:       "watering",
		Description: "Water group membership must match individual group assignments",
		Check:       checkWaterGroups,
	})
}

// checkWaterGroups verifies that every plant name listed in a water group
// has an individual requirement entry assigned to that group. The expected
// group letter is derived from the group id ("water_group_a" -> "A").
// Requirement entries are matched by plant_name equality; the first match
// in collection order wins, ties are not reported.
func checkWaterGroups(ds *audit.Dataset) []audit.Finding {
	var findings []audit.Finding
	for _, group := range ds.WaterGroups {
		expected := groupLetter(group.ID)

		for _, name := range group.Plants {
			req, found := findRequirementByName(ds.WaterRequirements, name)
			if !found {
				findings = append(findings, audit.Finding{
					RuleID:   "WG01",
					Severity: audit.SeverityWarning,
					Entity:   name,
					Message:  fmt.Sprintf("Plant '%s' listed in %s but has no individual water requirements", name, group.ID),
				})
				continue
			}
			if req.Group != expected {
				findings = append(findings, audit.Finding{
					RuleID:   "WG01",
					Severity: audit.SeverityCritical,
					Entity:   name,
					Message:  fmt.Sprintf("Plant '%s' listed in %s (group %s) but assigned to group %s", name, group.ID, expected, req.Group),
				})
			}
		}
	}
	return findings
}

// groupLetter extracts the upper-cased suffix after the last underscore.
func groupLetter(groupID string) string {
	if i := strings.LastIndex(groupID, "_"); i >= 0 {
		return strings.ToUpper(groupID[i+1:])
	}
	return strings.ToUpper(groupID)
}

func findRequirementByName(reqs []audit.WaterRequirement, plantName string) (audit.WaterRequirement, bool) {
	for _, req := range reqs {
		if req.PlantName == plantName {
			return req, true
		}
	}
	return audit.WaterRequirement{}, false
}
