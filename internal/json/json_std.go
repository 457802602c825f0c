//go:build !((linux || darwin || windows) && (amd64 || arm64))

package json

import (
	stdjson "encoding/json"
	"io"
)

// Encoder writes JSON values to a stream.
type Encoder interface {
	Encode(v any) error
	SetEscapeHTML(on bool)
	SetIndent(prefix, indent string)
}

// Decoder reads JSON values from a stream.
type Decoder interface {
	Decode(v any) error
	Buffered() io.Reader
	DisallowUnknownFields()
	More() bool
	UseNumber()
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return stdjson.NewEncoder(w)
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return stdjson.NewDecoder(r)
}
