//go:build (linux || darwin || windows) && (amd64 || arm64)

// Package json routes the streaming JSON used by the corpus loader and the
// CLI through sonic on platforms its JIT supports and through encoding/json
// everywhere else.
package json

import (
	"io"

	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

// Encoder writes JSON values to a stream.
type Encoder = sonic.Encoder

// Decoder reads JSON values from a stream.
type Decoder = sonic.Decoder

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return api.NewEncoder(w)
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return api.NewDecoder(r)
}
