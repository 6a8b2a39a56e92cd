// Package core holds the shared sample model of the conditioning stages:
// the error taxonomy every stage reports through, buffer helpers for
// caller-owned output slices, and small numeric helpers.
package core
