// Package diagnostic provides structured errors, warnings and notes
// collected while planning a tuple generation run.
//
// Key capabilities:
//   - Unknown or duplicate capability names
//   - Capabilities pulled in through dependencies
//   - Output size warnings for large arity tiers
//   - Go version requirements of the target module
package diagnostic
