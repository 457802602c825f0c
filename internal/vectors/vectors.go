package vectors

import (
	"bytes"
	_ "embed"
	"encoding/hex"
	"fmt"
	"io"

	"go.dw1.io/x/wyhash"
	"go.dw1.io/x/wyhash/cast"
	"go.dw1.io/x/wyhash/internal/json"
)

// RandSteps is the number of outputs recorded per wyrand sequence.
const RandSteps = 32

//go:embed vectors.json
var corpus []byte

// SecretCase is a MakeSecret vector.
type SecretCase struct {
	Seed   uint64
	Secret wyhash.Secret
}

// Hash64Case is a two-word hash vector.
type Hash64Case struct {
	A, B uint64
	Want uint64
}

// RandCase is a wyrand sequence starting at Seed.
type RandCase struct {
	Seed   uint64
	Values [RandSteps]uint64
	Final  uint64
}

// HashCase is a variable-length hash vector.
type HashCase struct {
	Secret wyhash.Secret
	Seed   uint64
	Key    []byte
	Want   uint64
}

// Set is a complete corpus.
type Set struct {
	MakeSecret []SecretCase
	Hash64     []Hash64Case
	Rand       []RandCase
	Hash       []HashCase
}

// Len returns the total number of cases.
func (s *Set) Len() int {
	return len(s.MakeSecret) + len(s.Hash64) + len(s.Rand) + len(s.Hash)
}

type document struct {
	MakeSecret []struct {
		Seed   string    `json:"seed"`
		Secret [4]string `json:"secret"`
	} `json:"make_secret"`
	Hash64 []struct {
		A    string `json:"a"`
		B    string `json:"b"`
		Want string `json:"want"`
	} `json:"wyhash64"`
	Rand []struct {
		Seed   string   `json:"seed"`
		Values []string `json:"values"`
		Final  string   `json:"final"`
	} `json:"wyrand"`
	Hash []struct {
		Secret [4]string `json:"secret"`
		Seed   string    `json:"seed"`
		Key    string    `json:"key"`
		Want   string    `json:"want"`
	} `json:"wyhash"`
}

// Load decodes the embedded corpus.
func Load() (*Set, error) {
	return Decode(bytes.NewReader(corpus))
}

// Decode reads a corpus in the embedded JSON layout from r. Unknown fields
// are rejected.
func Decode(r io.Reader) (*Set, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}

	set := &Set{
		MakeSecret: make([]SecretCase, len(doc.MakeSecret)),
		Hash64:     make([]Hash64Case, len(doc.Hash64)),
		Rand:       make([]RandCase, len(doc.Rand)),
		Hash:       make([]HashCase, len(doc.Hash)),
	}

	var p parser
	for i, c := range doc.MakeSecret {
		set.MakeSecret[i] = SecretCase{Seed: p.word(c.Seed), Secret: p.secret(c.Secret[:])}
	}
	for i, c := range doc.Hash64 {
		set.Hash64[i] = Hash64Case{A: p.word(c.A), B: p.word(c.B), Want: p.word(c.Want)}
	}
	for i, c := range doc.Rand {
		rc := RandCase{Seed: p.word(c.Seed), Final: p.word(c.Final)}
		if len(c.Values) != RandSteps {
			return nil, fmt.Errorf("wyrand case %d: %d values, want %d", i, len(c.Values), RandSteps)
		}
		for j, v := range c.Values {
			rc.Values[j] = p.word(v)
		}
		set.Rand[i] = rc
	}
	for i, c := range doc.Hash {
		key, err := hex.DecodeString(c.Key)
		if err != nil {
			return nil, fmt.Errorf("wyhash case %d: key: %w", i, err)
		}
		set.Hash[i] = HashCase{Secret: p.secret(c.Secret[:]), Seed: p.word(c.Seed), Key: key, Want: p.word(c.Want)}
	}

	if p.err != nil {
		return nil, fmt.Errorf("decode corpus: %w", p.err)
	}

	return set, nil
}

// parser keeps the first conversion error so callers can check once.
type parser struct {
	err error
}

func (p *parser) word(s string) uint64 {
	if p.err != nil {
		return 0
	}

	v, err := cast.ToUint64N(s)
	if err != nil {
		p.err = err
	}

	return v
}

func (p *parser) secret(words []string) wyhash.Secret {
	var s wyhash.Secret
	if len(words) != len(s) {
		if p.err == nil {
			p.err = fmt.Errorf("secret has %d words, want %d", len(words), len(s))
		}
		return s
	}
	for i, w := range words {
		s[i] = p.word(w)
	}
	return s
}
