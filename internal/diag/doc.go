// Package diag provides a collecting log sink so tests can assert on the
// diagnostic lines emitted while assembling a parametrization table
// without capturing process log output.
package diag
