// Package profile summarizes a frame column by column. The cleaning stage
// uses it to report missing-value counts before any fill happens.
package profile

import (
	"fmt"
	"math"
	"sort"
	"strings"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
)

type NumStats struct {
	Count int
	Nulls int
	Min   float64
	Max   float64
	Sum   float64
}

func (s NumStats) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

type StrStats struct {
	Count int
	Nulls int
	Freqs map[string]int
}

type ColumnProfile struct {
	Name string
	Kind bc.Kind
	Num  *NumStats
	Str  *StrStats
}

func (p ColumnProfile) Missing() int {
	if p.Num != nil {
		return p.Num.Nulls
	}
	if p.Str != nil {
		return p.Str.Nulls
	}
	return 0
}

// Collect walks the whole frame once and returns a profile per column in
// schema order.
func Collect(f *bc.Frame) []ColumnProfile {
	out := make([]ColumnProfile, 0, len(f.Schema().Columns))
	for _, cs := range f.Schema().Columns {
		cp := ColumnProfile{Name: cs.Name, Kind: cs.Type}
		col, _ := f.ColumnByName(cs.Name)
		switch c := col.(type) {
		case *bc.FloatColumn:
			st := &NumStats{Min: math.Inf(1), Max: math.Inf(-1)}
			for i := 0; i < c.Len(); i++ {
				if c.IsNull(i) {
					st.Nulls++
					continue
				}
				v, _ := c.Get(i)
				st.Count++
				if v < st.Min {
					st.Min = v
				}
				if v > st.Max {
					st.Max = v
				}
				st.Sum += v
			}
			cp.Num = st
		case *bc.IntColumn:
			st := &NumStats{Min: math.Inf(1), Max: math.Inf(-1)}
			for i := 0; i < c.Len(); i++ {
				if c.IsNull(i) {
					st.Nulls++
					continue
				}
				v, _ := c.Get(i)
				st.Count++
				fv := float64(v)
				if fv < st.Min {
					st.Min = fv
				}
				if fv > st.Max {
					st.Max = fv
				}
				st.Sum += fv
			}
			cp.Num = st
		case *bc.StringColumn:
			st := &StrStats{Freqs: make(map[string]int)}
			for i := 0; i < c.Len(); i++ {
				if c.IsNull(i) {
					st.Nulls++
					continue
				}
				v, _ := c.Get(i)
				st.Count++
				st.Freqs[v]++
			}
			cp.Str = st
		}
		out = append(out, cp)
	}
	return out
}

// MissingReport formats per-column missing counts in schema order.
func MissingReport(profiles []ColumnProfile) string {
	var b strings.Builder
	b.WriteString("Missing values before cleaning:\n")
	for _, cp := range profiles {
		fmt.Fprintf(&b, "  %s: %d\n", cp.Name, cp.Missing())
	}
	return b.String()
}

// Summary formats a one-line stat summary per column.
func Summary(profiles []ColumnProfile) string {
	var b strings.Builder
	for _, cp := range profiles {
		fmt.Fprintf(&b, "- %s (%v): ", cp.Name, cp.Kind)
		switch {
		case cp.Num != nil:
			fmt.Fprintf(&b, "count=%d nulls=%d min=%.6g max=%.6g mean=%.6g\n",
				cp.Num.Count, cp.Num.Nulls, cp.Num.Min, cp.Num.Max, cp.Num.Mean())
		case cp.Str != nil:
			fmt.Fprintf(&b, "count=%d nulls=%d distinct=%d", cp.Str.Count, cp.Str.Nulls, len(cp.Str.Freqs))
			if top, n := topValue(cp.Str.Freqs); n > 0 {
				fmt.Fprintf(&b, " top=%q(%d)", top, n)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func topValue(freqs map[string]int) (string, int) {
	keys := make([]string, 0, len(freqs))
	for k := range freqs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var best string
	var bestc int
	for _, k := range keys {
		if freqs[k] > bestc {
			bestc = freqs[k]
			best = k
		}
	}
	return best, bestc
}
