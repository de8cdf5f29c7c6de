// Package domain defines the core domain types and interfaces.
//
// Concept-oriented files (review.go, report.go) hold shared types and
// cross-cutting contracts. No implementation code - just contracts.
// Keeping interfaces on the consumer side prevents circular imports.
package domain
