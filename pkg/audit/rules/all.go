// Package rules registers the plant database audit rule catalog.
// Import this package to register all rules with the global registry.
package rules
