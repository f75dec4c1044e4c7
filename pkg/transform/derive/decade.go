// Package derive adds composite columns to a cleaned climate table. Every
// derivation is a pure row-wise function of existing columns; unlike the
// cleaning transforms, a missing source column here is an error that names
// the column (except the deliberately optional Season case).
package derive

import (
	"context"
	"fmt"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
)

// Decade buckets a year column into its decade: (Year / 10) * 10.
type Decade struct {
	Source string // default "Year"
	Target string // default "Decade"
}

func (t *Decade) Name() string { return "derive_decade" }

func (t *Decade) Apply(ctx context.Context, f *bc.Frame) (*bc.Frame, error) {
	src := t.Source
	if src == "" {
		src = "Year"
	}
	dst := t.Target
	if dst == "" {
		dst = "Decade"
	}
	col, ok := f.ColumnByName(src)
	if !ok {
		return nil, fmt.Errorf("derive_decade: missing column %s", src)
	}
	out, err := f.AddColumn(bc.ColumnSchema{Name: dst, Type: bc.KindInt, Nullable: true})
	if err != nil {
		return nil, fmt.Errorf("derive_decade: %w", err)
	}
	oc := out.(*bc.IntColumn)
	switch c := col.(type) {
	case *bc.IntColumn:
		for i := 0; i < c.Len(); i++ {
			if v, ok := c.Get(i); ok {
				oc.Set(i, v/10*10)
			}
		}
	case *bc.FloatColumn:
		for i := 0; i < c.Len(); i++ {
			if v, ok := c.Get(i); ok {
				oc.Set(i, int64(v)/10*10)
			}
		}
	default:
		return nil, fmt.Errorf("derive_decade: column %s is not numeric", src)
	}
	return f, nil
}
