// Package paramtable reduces wrapped test cases into the (header, rows)
// table a parametrized-test runner consumes.
//
// A Case wraps a caller-defined record with an optional id and optional
// marks. Build derives the header from the first case's record, turns
// every case into either a PlainRow or an AnnotatedRow, and preserves
// input order throughout. The adapter never interprets ids or marks; it
// only carries them to the runner boundary.
package paramtable
