package derive

import (
	"context"
	"fmt"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
)

// seasonByMonth spells the month buckets out explicitly; the wraparound
// Winter label makes edge-based binning too easy to get wrong.
var seasonByMonth = map[int64]string{
	1: "Winter", 2: "Winter",
	3: "Spring", 4: "Spring", 5: "Spring",
	6: "Summer", 7: "Summer", 8: "Summer",
	9: "Autumn", 10: "Autumn", 11: "Autumn",
	12: "Winter",
}

// Season derives a categorical season bucket from a month column. The
// month column is optional: when absent the frame passes through
// unchanged. Out-of-range months leave a null cell.
type Season struct {
	Source string // default "Month"
	Target string // default "Season"
}

func (t *Season) Name() string { return "derive_season" }

func (t *Season) Apply(ctx context.Context, f *bc.Frame) (*bc.Frame, error) {
	src := t.Source
	if src == "" {
		src = "Month"
	}
	dst := t.Target
	if dst == "" {
		dst = "Season"
	}
	col, ok := f.ColumnByName(src)
	if !ok {
		return f, nil
	}
	out, err := f.AddColumn(bc.ColumnSchema{Name: dst, Type: bc.KindString, Nullable: true})
	if err != nil {
		return nil, fmt.Errorf("derive_season: %w", err)
	}
	oc := out.(*bc.StringColumn)
	for i := 0; i < f.Rows(); i++ {
		m, ok := numericAt(col, i)
		if !ok {
			continue
		}
		if s, ok := seasonByMonth[int64(m)]; ok {
			oc.Set(i, s)
		}
	}
	return f, nil
}
