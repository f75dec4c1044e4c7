package impute

import (
	"context"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
)

// Auto applies the whole-table fill policy: numeric columns take their
// median, categorical columns take their mode. Each column is handled
// independently; all-missing columns stay as they are.
type Auto struct {
	Skip []string
}

func (t *Auto) Name() string { return "impute_auto" }

func (t *Auto) Apply(ctx context.Context, f *bc.Frame) (*bc.Frame, error) {
	skip := make(map[string]bool, len(t.Skip))
	for _, s := range t.Skip {
		skip[s] = true
	}
	for _, cs := range f.Schema().Columns {
		if skip[cs.Name] {
			continue
		}
		var (
			err error
			sub bc.Transform
		)
		switch cs.Type {
		case bc.KindInt, bc.KindFloat:
			sub = &Median{Column: cs.Name}
		case bc.KindString:
			sub = &Mode{Column: cs.Name}
		default:
			continue
		}
		if _, err = sub.Apply(ctx, f); err != nil {
			return nil, err
		}
	}
	return f, nil
}
