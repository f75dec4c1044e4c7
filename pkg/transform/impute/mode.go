package impute

import (
	"context"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
)

// Mode fills missing cells with the most frequent non-missing value.
// Ties break to the value first encountered in row order: the counter only
// replaces the running best on a strictly greater count.
type Mode struct{ Column string }

func (t *Mode) Name() string { return "impute_mode" }

func (t *Mode) Apply(ctx context.Context, f *bc.Frame) (*bc.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	switch c := col.(type) {
	case *bc.StringColumn:
		counts := map[string]int{}
		var best string
		var bestc int
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			v, _ := c.Get(i)
			counts[v]++
			if counts[v] > bestc {
				bestc = counts[v]
				best = v
			}
		}
		if bestc == 0 {
			return f, nil
		}
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				c.Set(i, best)
			}
		}
	case *bc.IntColumn:
		counts := map[int64]int{}
		var best int64
		var bestc int
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			v, _ := c.Get(i)
			counts[v]++
			if counts[v] > bestc {
				bestc = counts[v]
				best = v
			}
		}
		if bestc == 0 {
			return f, nil
		}
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				c.Set(i, best)
			}
		}
	}
	return f, nil
}
