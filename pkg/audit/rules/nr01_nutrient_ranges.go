package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/greenstack-labs/plantaudit/pkg/audit"
)

// Conventional bounds for watering parameters. Values outside these bounds
// parse fine and are only unusual, not invalid.
const (
	ppmMin = 0
	ppmMax = 500
	phMin  = 4.0
	phMax  = 8.0
)

func init() {
	audit.Register(audit.RuleDef{
		ID:          "NR01",
		Name:        "nutrient-ranges",
		Group:       "watering",
		Description: "PPM and pH ranges must parse with min < max and stay within convention",
		Check:       checkNutrientRanges,
	})
}

// checkNutrientRanges validates the "<min>-<max>" ppm and ph text fields of
// every water requirement. The two sub-checks are independent: one entry
// can produce zero, one, or two findings. A reversed range is a critical
// issue, an unparsable one degrades to a warning naming the raw value, and
// a parsed range outside convention is a warning. A reversed range is still
// bounds-checked, so it can yield both an issue and a warning.
func checkNutrientRanges(ds *audit.Dataset) []audit.Finding {
	var findings []audit.Finding
	for _, req := range ds.WaterRequirements {
		findings = append(findings, checkPPMRange(req)...)
		findings = append(findings, checkPHRange(req)...)
	}
	return findings
}

func checkPPMRange(req audit.WaterRequirement) []audit.Finding {
	raw := req.PPMRange
	lo, hi, ok := splitRange(raw)
	if !ok {
		return nil
	}

	minVal, errMin := strconv.Atoi(lo)
	maxVal, errMax := strconv.Atoi(hi)
	if errMin != nil || errMax != nil {
		return []audit.Finding{{
			RuleID:   "NR01",
			Severity: audit.SeverityWarning,
			Entity:   req.ID,
			Message:  fmt.Sprintf("Plant '%s': cannot parse ppm range '%s'", req.ID, raw),
		}}
	}

	var findings []audit.Finding
	if minVal >= maxVal {
		findings = append(findings, audit.Finding{
			RuleID:   "NR01",
			Severity: audit.SeverityCritical,
			Entity:   req.ID,
			Message:  fmt.Sprintf("Plant '%s': invalid ppm range '%s' (min >= max)", req.ID, raw),
		})
	}
	if minVal < ppmMin || maxVal > ppmMax {
		findings = append(findings, audit.Finding{
			RuleID:   "NR01",
			Severity: audit.SeverityWarning,
			Entity:   req.ID,
			Message:  fmt.Sprintf("Plant '%s': unusual ppm range '%s'", req.ID, raw),
		})
	}
	return findings
}

func checkPHRange(req audit.WaterRequirement) []audit.Finding {
	raw := req.PHRange
	lo, hi, ok := splitRange(raw)
	if !ok {
		return nil
	}

	minVal, errMin := strconv.ParseFloat(lo, 64)
	maxVal, errMax := strconv.ParseFloat(hi, 64)
	if errMin != nil || errMax != nil {
		return []audit.Finding{{
			RuleID:   "NR01",
			Severity: audit.SeverityWarning,
			Entity:   req.ID,
			Message:  fmt.Sprintf("Plant '%s': cannot parse ph range '%s'", req.ID, raw),
		}}
	}

	var findings []audit.Finding
	if minVal >= maxVal {
		findings = append(findings, audit.Finding{
			RuleID:   "NR01",
			Severity: audit.SeverityCritical,
			Entity:   req.ID,
			Message:  fmt.Sprintf("Plant '%s': invalid ph range '%s' (min >= max)", req.ID, raw),
		})
	}
	if minVal < phMin || maxVal > phMax {
		findings = append(findings, audit.Finding{
			RuleID:   "NR01",
			Severity: audit.SeverityWarning,
			Entity:   req.ID,
			Message:  fmt.Sprintf("Plant '%s': unusual ph range '%s'", req.ID, raw),
		})
	}
	return findings
}

// splitRange splits a "<min>-<max>" value into its two trimmed tokens.
// Fields without a separator are skipped silently, matching the loose
// source data where single values and blanks are common.
func splitRange(raw string) (lo, hi string, ok bool) {
	if raw == "" || !strings.Contains(raw, "-") {
		return "", "", false
	}
	parts := strings.SplitN(raw, "-", 2)
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}
