// Package vectors holds the wyhash conformance corpus.
//
// The corpus is embedded as JSON and can also be read from the text dump
// printed by the reference C test-vector program, so the Go implementation
// can be checked against a freshly generated dump as well as the shipped
// copy.
package vectors
