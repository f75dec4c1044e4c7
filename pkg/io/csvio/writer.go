package csvio

import (
	"encoding/csv"
	"strconv"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
	iox "github.com/raiyank/banglaclim/pkg/io/ioutils"
)

type WriterOptions struct {
	Delimiter rune // default ','
}

// WriteAll writes a Frame to a delimited file with a header row. No
// synthetic index column is emitted; null cells serialize as empty fields.
func WriteAll(path string, f *bc.Frame, opt WriterOptions) error {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	w := csv.NewWriter(out)
	if opt.Delimiter != 0 {
		w.Comma = opt.Delimiter
	}

	hdr := make([]string, len(f.Schema().Columns))
	for i, cs := range f.Schema().Columns {
		hdr[i] = cs.Name
	}
	if err := w.Write(hdr); err != nil {
		return err
	}

	for r := 0; r < f.Rows(); r++ {
		row := make([]string, len(hdr))
		for c, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case bc.KindFloat:
				if v, ok := col.(*bc.FloatColumn).Get(r); ok {
					row[c] = strconv.FormatFloat(v, 'g', -1, 64)
				}
			case bc.KindInt:
				if v, ok := col.(*bc.IntColumn).Get(r); ok {
					row[c] = strconv.FormatInt(v, 10)
				}
			case bc.KindString:
				if v, ok := col.(*bc.StringColumn).Get(r); ok {
					row[c] = v
				}
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
