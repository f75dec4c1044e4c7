package outliers

import (
	"context"
	"testing"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
)

func intFrame(name string, vals []int64) *bc.Frame {
	s := bc.Schema{Columns: []bc.ColumnSchema{{Name: name, Type: bc.KindInt, Nullable: true}}}
	f := bc.NewFrame(s)
	for _, v := range vals {
		f.AppendNullRow()
		col, _ := f.ColumnByName(name)
		col.(*bc.IntColumn).Set(f.Rows()-1, v)
	}
	return f
}

func floatFrame(name string, vals []float64) *bc.Frame {
	s := bc.Schema{Columns: []bc.ColumnSchema{{Name: name, Type: bc.KindFloat, Nullable: true}}}
	f := bc.NewFrame(s)
	for _, v := range vals {
		f.AppendNullRow()
		col, _ := f.ColumnByName(name)
		col.(*bc.FloatColumn).Set(f.Rows()-1, v)
	}
	return f
}

// [1,2,3,4,100] has Q1=2, Q3=4, IQR=2, fences [-1,7]; 100 clips to 7.
func TestIQRClipInt(t *testing.T) {
	f := intFrame("Cyclone_Count", []int64{1, 2, 3, 4, 100})
	out, err := (&IQRClip{}).Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	col, _ := out.ColumnByName("Cyclone_Count")
	c := col.(*bc.IntColumn)
	want := []int64{1, 2, 3, 4, 7}
	for i, w := range want {
		if v, _ := c.Get(i); v != w {
			t.Fatalf("row %d = %d, want %d", i, v, w)
		}
	}
	if out.Rows() != 5 {
		t.Fatalf("clipping must preserve rows, got %d", out.Rows())
	}
}

func TestIQRClipFloat(t *testing.T) {
	f := floatFrame("AQI", []float64{1, 2, 3, 4, 100})
	out, err := (&IQRClip{K: 1.5}).Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	col, _ := out.ColumnByName("AQI")
	c := col.(*bc.FloatColumn)
	for i := 0; i < c.Len(); i++ {
		v, _ := c.Get(i)
		if v < -1 || v > 7 {
			t.Fatalf("row %d = %g outside fences [-1, 7]", i, v)
		}
	}
	if v, _ := c.Get(4); v != 7 {
		t.Fatalf("outlier clipped to %g, want 7", v)
	}
}

// [1,10,13,14,15,16] has Q1=10.75, Q3=14.75, lower fence 4.75: an int
// column must clip the outlier 1 inward to 5, not truncate to 4 below
// the fence.
func TestIQRClipIntFractionalFence(t *testing.T) {
	f := intFrame("Cyclone_Count", []int64{1, 10, 13, 14, 15, 16})
	out, err := (&IQRClip{}).Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	col, _ := out.ColumnByName("Cyclone_Count")
	c := col.(*bc.IntColumn)
	if v, _ := c.Get(0); v != 5 {
		t.Fatalf("outlier clipped to %d, want 5", v)
	}
	lo, hi := 4.75, 20.75
	for i := 0; i < c.Len(); i++ {
		v, _ := c.Get(i)
		if float64(v) < lo || float64(v) > hi {
			t.Fatalf("row %d = %d outside fences [%g, %g]", i, v, lo, hi)
		}
	}
}

func TestCapIntFractionalBounds(t *testing.T) {
	lo, hi := 4.75, 6.25
	f := intFrame("x", []int64{1, 5, 9})
	out, err := (&Cap{Column: "x", Min: &lo, Max: &hi}).Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	col, _ := out.ColumnByName("x")
	c := col.(*bc.IntColumn)
	for i, w := range []int64{5, 5, 6} {
		if v, _ := c.Get(i); v != w {
			t.Fatalf("row %d = %d, want %d", i, v, w)
		}
	}
}

func TestIQRClipQuantileInterpolation(t *testing.T) {
	// [10, 20, 30, 40]: Q1 at pos 0.75 -> 17.5, Q3 at pos 2.25 -> 32.5
	f := floatFrame("x", []float64{10, 20, 30, 40})
	out, err := (&IQRClip{}).Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	// IQR=15, fences [-5, 55]: nothing clips
	col, _ := out.ColumnByName("x")
	c := col.(*bc.FloatColumn)
	for i, w := range []float64{10, 20, 30, 40} {
		if v, _ := c.Get(i); v != w {
			t.Fatalf("row %d = %g, want %g untouched", i, v, w)
		}
	}
}

func TestIQRClipConstantColumn(t *testing.T) {
	f := floatFrame("flat", []float64{5, 5, 5, 5})
	out, err := (&IQRClip{}).Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	col, _ := out.ColumnByName("flat")
	c := col.(*bc.FloatColumn)
	for i := 0; i < c.Len(); i++ {
		if v, _ := c.Get(i); v != 5 {
			t.Fatalf("zero-variance column changed at row %d: %g", i, v)
		}
	}
}

func TestCapBounds(t *testing.T) {
	lo, hi := 0.0, 10.0
	f := floatFrame("x", []float64{-5, 3, 50})
	out, err := (&Cap{Column: "x", Min: &lo, Max: &hi}).Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	col, _ := out.ColumnByName("x")
	c := col.(*bc.FloatColumn)
	for i, w := range []float64{0, 3, 10} {
		if v, _ := c.Get(i); v != w {
			t.Fatalf("row %d = %g, want %g", i, v, w)
		}
	}
}
