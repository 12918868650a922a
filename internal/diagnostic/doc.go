// Package diagnostic provides structured warnings and errors for the
// converter generator.
//
// Key capabilities:
//   - Per-unit integrity reports (definition counts, duplicate overload keys)
//   - Configuration warnings (raised ceilings, disabled shapes)
//   - Aggregation into a single error for CLI exit handling
package diagnostic
