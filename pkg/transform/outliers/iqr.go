package outliers

import (
	"context"
	"sort"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
)

// IQRClip clips every numeric column to Tukey fences derived from its own
// completed values: [Q1 - K*IQR, Q3 + K*IQR]. Quantiles use linear
// interpolation. Run this after imputation so the fences see a full column.
type IQRClip struct {
	K    float64 // fence multiplier; 0 means 1.5
	Skip []string
}

func (t *IQRClip) Name() string { return "iqr_clip" }

func (t *IQRClip) Apply(ctx context.Context, f *bc.Frame) (*bc.Frame, error) {
	k := t.K
	if k == 0 {
		k = 1.5
	}
	skip := make(map[string]bool, len(t.Skip))
	for _, s := range t.Skip {
		skip[s] = true
	}
	for _, cs := range f.Schema().Columns {
		if skip[cs.Name] {
			continue
		}
		var vals []float64
		switch cs.Type {
		case bc.KindFloat:
			col, _ := f.ColumnByName(cs.Name)
			c := col.(*bc.FloatColumn)
			vals = make([]float64, 0, c.Len())
			for i := 0; i < c.Len(); i++ {
				if !c.IsNull(i) {
					v, _ := c.Get(i)
					vals = append(vals, v)
				}
			}
		case bc.KindInt:
			col, _ := f.ColumnByName(cs.Name)
			c := col.(*bc.IntColumn)
			vals = make([]float64, 0, c.Len())
			for i := 0; i < c.Len(); i++ {
				if !c.IsNull(i) {
					v, _ := c.Get(i)
					vals = append(vals, float64(v))
				}
			}
		default:
			continue
		}
		if len(vals) == 0 {
			continue
		}
		sort.Float64s(vals)
		q1 := quantile(vals, 0.25)
		q3 := quantile(vals, 0.75)
		iqr := q3 - q1
		lo := q1 - k*iqr
		hi := q3 + k*iqr
		clip := &Cap{Column: cs.Name, Min: &lo, Max: &hi}
		if _, err := clip.Apply(ctx, f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// quantile estimates the q-th quantile of sorted values with linear
// interpolation between order statistics.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(pos)
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
