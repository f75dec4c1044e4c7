package outliers

import (
	"context"
	"math"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
)

// Cap clips a numeric column to fixed bounds. Integer columns clip inward
// to the nearest integer inside a fractional bound, so no replacement can
// land outside [Min, Max].
type Cap struct {
	Column string
	Min    *float64
	Max    *float64
}

func (t *Cap) Name() string { return "cap_range" }

func (t *Cap) Apply(ctx context.Context, f *bc.Frame) (*bc.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	switch c := col.(type) {
	case *bc.FloatColumn:
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			v, _ := c.Get(i)
			if t.Min != nil && v < *t.Min {
				v = *t.Min
			}
			if t.Max != nil && v > *t.Max {
				v = *t.Max
			}
			c.Set(i, v)
		}
	case *bc.IntColumn:
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			v, _ := c.Get(i)
			if t.Min != nil && float64(v) < *t.Min {
				v = int64(math.Ceil(*t.Min))
			}
			if t.Max != nil && float64(v) > *t.Max {
				v = int64(math.Floor(*t.Max))
			}
			c.Set(i, v)
		}
	}
	return f, nil
}
