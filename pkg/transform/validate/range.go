// Package validate holds optional sanity checks. None run by default;
// they are wired in through run-config steps (e.g. Month in 1..12,
// percent columns in 0..100).
package validate

import (
	"context"
	"fmt"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
)

type Range struct {
	Column string
	Min    *float64
	Max    *float64
}

func (t *Range) Name() string { return "validate_range" }

func (t *Range) Apply(ctx context.Context, f *bc.Frame) (*bc.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	var bad int
	switch c := col.(type) {
	case *bc.FloatColumn:
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			v, _ := c.Get(i)
			if t.Min != nil && v < *t.Min {
				bad++
			}
			if t.Max != nil && v > *t.Max {
				bad++
			}
		}
	case *bc.IntColumn:
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			v, _ := c.Get(i)
			if t.Min != nil && float64(v) < *t.Min {
				bad++
			}
			if t.Max != nil && float64(v) > *t.Max {
				bad++
			}
		}
	}
	if bad > 0 {
		return f, fmt.Errorf("validate_range: column %s has %d out-of-range values", t.Column, bad)
	}
	return f, nil
}
