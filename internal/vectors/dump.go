package vectors

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/coregx/coregex"
)

// ErrMalformedDump is returned when a reference dump line cannot be parsed.
var ErrMalformedDump = errors.New("vectors: malformed dump")

const hexWordRe = `(0x[0-9a-f]{16})`

// quotedKeyRe matches the body of a C-quoted key, stopping at the first
// unescaped quote.
const quotedKeyRe = `"((?:[^"\\]|\\.)*)"`

var (
	makeSecretLine = mustCompile(`^\[make_secret\] ` + hexWordRe + ` => ` + hexWordRe + `, ` + hexWordRe + `, ` + hexWordRe + `, ` + hexWordRe + `$`)
	hash64Line     = mustCompile(`^\[wyhash64\] ` + hexWordRe + ` x ` + hexWordRe + ` = ` + hexWordRe + `$`)
	randLine       = mustCompile(`^\[wyrand\] ` + hexWordRe + ` : ([0-9a-fx, ]+) => ` + hexWordRe + `$`)
	hashLine       = mustCompile(`^\[wyhash\] <` + hexWordRe + `, ` + hexWordRe + `, ` + hexWordRe + `, ` + hexWordRe + `> ` + hexWordRe + ` ` + quotedKeyRe + ` => ` + hexWordRe + `$`)
)

func mustCompile(pattern string) *coregex.Regex {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("vectors: compile %q: %v", pattern, err))
	}
	return re
}

// ParseDump reads the text emitted by the reference test-vector program.
// Blank lines and the trailing "Done" marker are ignored.
func ParseDump(r io.Reader) (*Set, error) {
	set := &Set{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)

	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || line == "Done" {
			continue
		}
		if err := set.parseLine(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}

	return set, nil
}

func (s *Set) parseLine(line string) error {
	var p parser

	switch {
	case strings.HasPrefix(line, "[make_secret] "):
		m := makeSecretLine.FindStringSubmatch(line)
		if m == nil {
			return fmt.Errorf("%w: %q", ErrMalformedDump, line)
		}
		s.MakeSecret = append(s.MakeSecret, SecretCase{Seed: p.word(m[1]), Secret: p.secret(m[2:6])})

	case strings.HasPrefix(line, "[wyhash64] "):
		m := hash64Line.FindStringSubmatch(line)
		if m == nil {
			return fmt.Errorf("%w: %q", ErrMalformedDump, line)
		}
		s.Hash64 = append(s.Hash64, Hash64Case{A: p.word(m[1]), B: p.word(m[2]), Want: p.word(m[3])})

	case strings.HasPrefix(line, "[wyrand] "):
		m := randLine.FindStringSubmatch(line)
		if m == nil {
			return fmt.Errorf("%w: %q", ErrMalformedDump, line)
		}
		values := strings.Split(m[2], ", ")
		if len(values) != RandSteps {
			return fmt.Errorf("%w: %d wyrand values, want %d", ErrMalformedDump, len(values), RandSteps)
		}
		rc := RandCase{Seed: p.word(m[1]), Final: p.word(m[3])}
		for i, v := range values {
			rc.Values[i] = p.word(v)
		}
		s.Rand = append(s.Rand, rc)

	case strings.HasPrefix(line, "[wyhash] "):
		m := hashLine.FindStringSubmatch(line)
		if m == nil {
			return fmt.Errorf("%w: %q", ErrMalformedDump, line)
		}
		key, err := Unescape(m[6])
		if err != nil {
			return err
		}
		s.Hash = append(s.Hash, HashCase{Secret: p.secret(m[1:5]), Seed: p.word(m[5]), Key: key, Want: p.word(m[7])})

	default:
		return fmt.Errorf("%w: unknown record %q", ErrMalformedDump, line)
	}

	if p.err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedDump, p.err)
	}

	return nil
}

var simpleEscapes = map[byte]byte{
	'0':  0,
	'a':  '\a',
	'b':  '\b',
	't':  '\t',
	'n':  '\n',
	'v':  '\v',
	'f':  '\f',
	'r':  '\r',
	'"':  '"',
	'\\': '\\',
}

// Unescape decodes a key as quoted by the reference dump: printable ASCII
// verbatim, C escapes for NUL and 0x07-0x0d, and \xHH for everything else.
func Unescape(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}

		i++
		if i == len(s) {
			return nil, fmt.Errorf("%w: trailing backslash in %q", ErrMalformedDump, s)
		}

		if b, ok := simpleEscapes[s[i]]; ok {
			out = append(out, b)
			continue
		}
		if s[i] != 'x' || i+2 >= len(s) {
			return nil, fmt.Errorf("%w: bad escape in %q", ErrMalformedDump, s)
		}

		hi, okHi := hexNibble(s[i+1])
		lo, okLo := hexNibble(s[i+2])
		if !okHi || !okLo {
			return nil, fmt.Errorf("%w: bad hex escape in %q", ErrMalformedDump, s)
		}
		out = append(out, hi<<4|lo)
		i += 2
	}

	return out, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
