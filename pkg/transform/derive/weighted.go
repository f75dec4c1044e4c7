package derive

import (
	"context"
	"fmt"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
)

// Term is one weighted input to a composite index.
type Term struct {
	Column string
	Weight float64
}

// WeightedSum computes a composite index row-wise:
//
//	out = (Bias + sum(Weight_i * col_i)) * Scale
//
// Scale of 0 means 1. Rows with any null input keep a null output, though
// after cleaning no nulls remain in numeric columns.
type WeightedSum struct {
	Target string
	Terms  []Term
	Bias   float64
	Scale  float64
}

func (t *WeightedSum) Name() string { return "derive_weighted_sum" }

func (t *WeightedSum) Apply(ctx context.Context, f *bc.Frame) (*bc.Frame, error) {
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	cols := make([]bc.Column, len(t.Terms))
	for i, term := range t.Terms {
		col, ok := f.ColumnByName(term.Column)
		if !ok {
			return nil, fmt.Errorf("derive %s: missing column %s", t.Target, term.Column)
		}
		if col.Kind() != bc.KindInt && col.Kind() != bc.KindFloat {
			return nil, fmt.Errorf("derive %s: column %s is not numeric", t.Target, term.Column)
		}
		cols[i] = col
	}
	out, err := f.AddColumn(bc.ColumnSchema{Name: t.Target, Type: bc.KindFloat, Nullable: true})
	if err != nil {
		return nil, fmt.Errorf("derive %s: %w", t.Target, err)
	}
	oc := out.(*bc.FloatColumn)
	for r := 0; r < f.Rows(); r++ {
		sum := t.Bias
		complete := true
		for i, term := range t.Terms {
			v, ok := numericAt(cols[i], r)
			if !ok {
				complete = false
				break
			}
			sum += term.Weight * v
		}
		if complete {
			oc.Set(r, sum*scale)
		}
	}
	return f, nil
}

func numericAt(col bc.Column, i int) (float64, bool) {
	switch c := col.(type) {
	case *bc.FloatColumn:
		return c.Get(i)
	case *bc.IntColumn:
		v, ok := c.Get(i)
		return float64(v), ok
	default:
		return 0, false
	}
}
