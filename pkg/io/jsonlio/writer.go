// Package jsonlio exports frames as JSON lines, one object per row.
package jsonlio

import (
	"encoding/json"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
	iox "github.com/raiyank/banglaclim/pkg/io/ioutils"
)

// WriteAll writes a Frame to a JSONL file. Null cells are omitted from the
// row object.
func WriteAll(path string, f *bc.Frame) error {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	enc := json.NewEncoder(out)
	for r := 0; r < f.Rows(); r++ {
		rec := make(map[string]any, len(f.Schema().Columns))
		for _, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case bc.KindFloat:
				if v, ok := col.(*bc.FloatColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case bc.KindInt:
				if v, ok := col.(*bc.IntColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case bc.KindString:
				if v, ok := col.(*bc.StringColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			}
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
