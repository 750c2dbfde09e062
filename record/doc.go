// Package record enumerates the named fields of a caller-defined test
// fixture record in declaration order.
//
// Key capabilities:
//   - Ordered (name, value) enumeration of arbitrary struct records
//   - Per-type override through the FieldEnumerable interface
//   - Name/value projections for header and row building
package record
