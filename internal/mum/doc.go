// Package mum holds the 64-bit arithmetic the wyhash family is built on: a
// widening 64x64->128 multiply and the multiply-xor fold ("mix") that every
// higher-level mixing step reuses.
package mum
