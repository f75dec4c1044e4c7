package standardize

import (
	"context"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
)

// MapValues rewrites exact string values, e.g. old district spellings to
// the names the region lists use ("Chittagong" -> "Chattogram").
type MapValues struct {
	Column string
	Map    map[string]string
}

func (t *MapValues) Name() string { return "map_values" }

func (t *MapValues) Apply(ctx context.Context, f *bc.Frame) (*bc.Frame, error) {
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
			if nv, ok := t.Map[v]; ok {
				c.Set(i, nv)
			}
		}
	}
	return f, nil
}
