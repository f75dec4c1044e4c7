package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
	iox "github.com/raiyank/banglaclim/pkg/io/ioutils"
)

type ReaderOptions struct {
	HasHeader bool
	Delimiter rune // 0 = sniff
	Strict    bool // if true, error on short/long records
}

// missing cell markers, in addition to the empty string
var missingTokens = map[string]bool{"NA": true, "NaN": true, "null": true}

// ReadAll loads an entire delimited file into a Frame. The dataset is a
// single bounded batch, so column kinds are inferred over every row rather
// than a sample window.
func ReadAll(path string, opt ReaderOptions) (*bc.Frame, error) {
	rc, err := iox.OpenMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	rr := csv.NewReader(bytes.NewReader(raw))
	if opt.Delimiter != 0 {
		rr.Comma = opt.Delimiter
	} else {
		rr.Comma = sniffDelimiter(raw)
	}
	rr.LazyQuotes = true
	rr.FieldsPerRecord = -1

	records, err := rr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse %s: empty file", path)
	}

	var names []string
	if opt.HasHeader {
		hdr := records[0]
		records = records[1:]
		names = make([]string, len(hdr))
		for i := range hdr {
			names[i] = strings.ToValidUTF8(strings.TrimSpace(hdr[i]), "?")
		}
		if len(names) > 0 {
			names[0] = strings.TrimPrefix(names[0], "\ufeff")
		}
	} else {
		names = make([]string, len(records[0]))
		for i := range names {
			names[i] = "col_" + strconv.Itoa(i)
		}
	}
	// a header-only file loads as an empty table and the run proceeds
	kinds := inferKinds(records, len(names))
	schema := bc.Schema{Columns: make([]bc.ColumnSchema, len(names))}
	for i := range names {
		schema.Columns[i] = bc.ColumnSchema{Name: names[i], Type: kinds[i], Nullable: true}
	}

	f := bc.NewFrame(schema)
	for rn, rec := range records {
		if opt.Strict && len(rec) != len(names) {
			return nil, fmt.Errorf("parse %s: row %d has %d fields, want %d", path, rn+1, len(rec), len(names))
		}
		f.AppendNullRow()
		row := f.Rows() - 1
		for i, cs := range schema.Columns {
			if i >= len(rec) {
				continue
			}
			val := strings.ToValidUTF8(strings.TrimSpace(rec[i]), "?")
			if val == "" || missingTokens[val] {
				continue
			}
			switch cs.Type {
			case bc.KindFloat:
				if x, err := strconv.ParseFloat(val, 64); err == nil {
					_ = f.SetCell(row, cs.Name, x)
				}
			case bc.KindInt:
				if x, err := strconv.ParseInt(val, 10, 64); err == nil {
					_ = f.SetCell(row, cs.Name, x)
				}
			default:
				_ = f.SetCell(row, cs.Name, val)
			}
		}
	}
	return f, nil
}

var numre = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`)

func inferKinds(rows [][]string, ncol int) []bc.Kind {
	kinds := make([]bc.Kind, ncol)
	for c := 0; c < ncol; c++ {
		num, integer, str := 0, 0, 0
		for _, row := range rows {
			if c >= len(row) {
				continue
			}
			v := strings.TrimSpace(row[c])
			if v == "" || missingTokens[v] {
				continue
			}
			if numre.MatchString(v) {
				num++
				if !strings.ContainsAny(v, ".eE") {
					integer++
				}
			} else {
				str++
			}
		}
		if num > str {
			if integer == num {
				kinds[c] = bc.KindInt
			} else {
				kinds[c] = bc.KindFloat
			}
		} else {
			kinds[c] = bc.KindString
		}
	}
	return kinds
}

func sniffDelimiter(sample []byte) rune {
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	candidates := []byte{',', '\t', ';', '|'}
	best := byte(',')
	bestCount := -1
	for _, c := range candidates {
		cnt := bytes.Count(sample, []byte{c})
		if cnt > bestCount {
			bestCount = cnt
			best = c
		}
	}
	return rune(best)
}
