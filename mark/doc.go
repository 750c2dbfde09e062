// Package mark models the opaque metadata tags attached to wrapped test
// cases for the downstream runner (skip, expected-failure, custom labels).
//
// Key capabilities:
//   - Mark values with a typed kind and optional reason
//   - YAML mark-definition files registering named marks up front
//   - Registry lookup and name resolution for annotating cases
package mark
