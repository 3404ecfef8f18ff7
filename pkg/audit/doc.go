// Package audit provides rule-based consistency auditing for a plant
// database dataset.
//
// The dataset is loaded once into an immutable bundle of typed collections
// (plants, soil mixes, soil components, water requirements, water groups).
// A fixed catalog of rules runs against the bundle; each rule is an
// independent, pure check that returns findings and never mutates shared
// state. Findings are classified as critical issues or warnings: issues
// mark broken cross-entity invariants and fail the audit, warnings are
// advisory and never affect the exit status.
//
// # Rule Categories
//
// Rules are organized into groups:
//
//   - referential (RF*): cross-collection reference and pairing checks
//   - catalog (CT*): component catalog completeness
//   - watering (WG*, WK*, NR*): water group, wick method and range checks
//   - naming (DP*): duplicate display names
//
// # Usage
//
// Build a Dataset (typically via internal/loader) and run the auditor:
//
//	auditor := audit.NewAuditor(nil)
//	report := auditor.Run(ds)
//	if !report.Healthy() {
//		// critical issues found
//	}
package audit
