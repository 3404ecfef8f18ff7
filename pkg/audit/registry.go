package audit

import (
	"sort"
	"sync"
)

// globalRegistry is the single global registry for audit rules.
var globalRegistry = &Registry{
	rules: make(map[string]RuleDef),
}

// Registry stores registered audit rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]RuleDef // keyed by ID
}

// RuleDef is an audit rule definition. Rules are stateless; all context
// comes in via the Check function's dataset argument.
type RuleDef struct {
	ID          string // Unique identifier, e.g., "RF01"
	Name        string // Human-readable name, e.g., "soil-mix-refs"
	Group       string // Category: "referential", "catalog", "watering", "naming"
	Description string // Human-readable description
	Check       Check  // The check function
}

// Check is the function signature for rule checks. Implementations must
// treat the dataset as read-only and return findings rather than failing:
// an unparsable field degrades to a warning naming the entity and raw value.
type Check func(ds *Dataset) []Finding

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.ID] = rule
}

// All returns all registered rules sorted by ID. The sorted order is the
// catalog's deterministic execution and reporting order.
func All() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]RuleDef, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })
	return rules
}

// GetByID returns a rule by its ID.
func GetByID(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[id]
	return rule, ok
}

// GetByGroup returns all rules in a specific group, sorted by ID.
func GetByGroup(group string) []RuleDef {
	var rules []RuleDef
	for _, rule := range All() {
		if rule.Group == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]RuleDef)
}
