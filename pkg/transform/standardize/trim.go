// Package standardize holds string-hygiene transforms. Regional
// partitioning matches district names exactly, so stray whitespace,
// spelling variants, and odd punctuation are fixed here before grouping.
package standardize

import (
	"context"
	"strings"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
)

type Trim struct{ Column string }

func (t *Trim) Name() string { return "trim" }

func (t *Trim) Apply(ctx context.Context, f *bc.Frame) (*bc.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	if c, ok := col.(*bc.StringColumn); ok {
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			v, _ := c.Get(i)
			c.Set(i, strings.TrimSpace(v))
		}
	}
	return f, nil
}
