package vectors

import (
	"fmt"
	"strings"

	"go.dw1.io/x/wyhash"
)

// Kind names a vector family the way the reference dump tags it.
type Kind string

const (
	KindMakeSecret Kind = "make_secret"
	KindHash64     Kind = "wyhash64"
	KindRand       Kind = "wyrand"
	KindHash       Kind = "wyhash"
)

// Kinds lists every vector family in dump order.
var Kinds = []Kind{KindMakeSecret, KindHash64, KindRand, KindHash}

// Result is the outcome of one case.
type Result struct {
	Kind  Kind
	Input string
	Want  string
	Got   string
	Err   error
}

// Pass reports whether the case reproduced its expected output.
func (r Result) Pass() bool {
	return r.Err == nil && r.Want == r.Got
}

// Tally counts the cases of one kind.
type Tally struct {
	Kind   Kind
	Passed int
	Total  int
}

// Report collects the results of a Verify run.
type Report struct {
	Results []Result
}

// Failures returns the cases that did not pass.
func (r *Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Pass() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Passed returns the number of passing cases.
func (r *Report) Passed() int {
	return len(r.Results) - len(r.Failures())
}

// OK reports whether every case passed.
func (r *Report) OK() bool {
	return len(r.Failures()) == 0
}

// Tallies summarizes the report per kind, in dump order. Kinds without
// cases are omitted.
func (r *Report) Tallies() []Tally {
	idx := make(map[Kind]int, len(Kinds))
	tallies := make([]Tally, 0, len(Kinds))
	for _, k := range Kinds {
		idx[k] = len(tallies)
		tallies = append(tallies, Tally{Kind: k})
	}

	for _, res := range r.Results {
		t := &tallies[idx[res.Kind]]
		t.Total++
		if res.Pass() {
			t.Passed++
		}
	}

	out := tallies[:0]
	for _, t := range tallies {
		if t.Total > 0 {
			out = append(out, t)
		}
	}
	return out
}

// Verify runs every case in set through the library.
func Verify(set *Set) *Report {
	report := &Report{Results: make([]Result, 0, set.Len())}

	for _, c := range set.MakeSecret {
		res := Result{Kind: KindMakeSecret, Input: hex64(c.Seed), Want: words(c.Secret[:]...)}
		got, err := wyhash.MakeSecret(c.Seed)
		if err != nil {
			res.Err = err
		} else {
			res.Got = words(got[:]...)
		}
		report.Results = append(report.Results, res)
	}

	for _, c := range set.Hash64 {
		report.Results = append(report.Results, Result{
			Kind:  KindHash64,
			Input: hex64(c.A) + " x " + hex64(c.B),
			Want:  hex64(c.Want),
			Got:   hex64(wyhash.Hash64(c.A, c.B)),
		})
	}

	for _, c := range set.Rand {
		src := wyhash.NewSource(c.Seed)
		var got [RandSteps]uint64
		for i := range got {
			got[i] = src.Uint64()
		}
		report.Results = append(report.Results, Result{
			Kind:  KindRand,
			Input: hex64(c.Seed),
			Want:  words(append(c.Values[:], c.Final)...),
			Got:   words(append(got[:], src.State)...),
		})
	}

	for _, c := range set.Hash {
		res := Result{
			Kind:  KindHash,
			Input: fmt.Sprintf("secret=%s seed=%s key=%q", hex64(c.Secret[0]), hex64(c.Seed), c.Key),
			Want:  hex64(c.Want),
		}
		got := wyhash.Sum64WithSecret(c.Key, c.Seed, c.Secret)
		res.Got = hex64(got)

		d := wyhash.New64WithSecret(c.Seed, c.Secret)
		d.SetMaxKeySize(-1)
		if _, err := d.Write(c.Key); err != nil {
			res.Err = err
		} else if streamed := d.Sum64(); streamed != got {
			res.Err = fmt.Errorf("streaming digest %s differs from one-shot %s", hex64(streamed), hex64(got))
		}
		report.Results = append(report.Results, res)
	}

	return report
}

func hex64(v uint64) string {
	return fmt.Sprintf("0x%016x", v)
}

func words(vs ...uint64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = hex64(v)
	}
	return strings.Join(parts, ", ")
}
