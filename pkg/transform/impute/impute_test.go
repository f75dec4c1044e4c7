package impute

import (
	"context"
	"testing"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
)

func makeFloatFrame() *bc.Frame {
	s := bc.Schema{Columns: []bc.ColumnSchema{{Name: "x", Type: bc.KindFloat, Nullable: true}}}
	f := bc.NewFrame(s)
	for i := 0; i < 5; i++ {
		f.AppendNullRow()
	}
	col, _ := f.ColumnByName("x")
	c := col.(*bc.FloatColumn)
	c.Set(0, 1.0)
	c.Set(2, 3.0)
	// rows 1,3,4 remain null
	return f
}

func TestMedianFloat(t *testing.T) {
	f := makeFloatFrame()
	tform := &Median{Column: "x"}
	out, err := tform.Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	col, _ := out.ColumnByName("x")
	c := col.(*bc.FloatColumn)
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			t.Fatalf("median imputer left null at row %d", i)
		}
	}
	if v, _ := c.Get(1); v != 2.0 {
		t.Fatalf("median of [1,3] should be 2, got %g", v)
	}
}

func TestMedianInt(t *testing.T) {
	s := bc.Schema{Columns: []bc.ColumnSchema{{Name: "n", Type: bc.KindInt, Nullable: true}}}
	f := bc.NewFrame(s)
	for i := 0; i < 4; i++ {
		f.AppendNullRow()
	}
	col, _ := f.ColumnByName("n")
	c := col.(*bc.IntColumn)
	c.Set(0, 1)
	c.Set(1, 2)
	c.Set(2, 4)
	if _, err := (&Median{Column: "n"}).Apply(context.Background(), f); err != nil {
		t.Fatal(err)
	}
	if v, ok := c.Get(3); !ok || v != 2 {
		t.Fatalf("int median fill = %d, want 2", v)
	}
}

func TestModeTieBreaksToFirstSeen(t *testing.T) {
	s := bc.Schema{Columns: []bc.ColumnSchema{{Name: "District", Type: bc.KindString, Nullable: true}}}
	f := bc.NewFrame(s)
	for i := 0; i < 5; i++ {
		f.AppendNullRow()
	}
	col, _ := f.ColumnByName("District")
	c := col.(*bc.StringColumn)
	c.Set(0, "Dhaka")
	c.Set(1, "Khulna")
	c.Set(2, "Dhaka")
	c.Set(3, "Khulna")
	// row 4 null; Dhaka and Khulna tie at 2, Dhaka was seen first
	if _, err := (&Mode{Column: "District"}).Apply(context.Background(), f); err != nil {
		t.Fatal(err)
	}
	if v, ok := c.Get(4); !ok || v != "Dhaka" {
		t.Fatalf("mode tie fill = %q, want first-seen %q", v, "Dhaka")
	}
}

func TestAutoFillsEveryColumn(t *testing.T) {
	s := bc.Schema{Columns: []bc.ColumnSchema{
		{Name: "AQI", Type: bc.KindFloat, Nullable: true},
		{Name: "Cyclone_Count", Type: bc.KindInt, Nullable: true},
		{Name: "District", Type: bc.KindString, Nullable: true},
	}}
	f := bc.NewFrame(s)
	for i := 0; i < 4; i++ {
		f.AppendNullRow()
	}
	_ = f.SetCell(0, "AQI", 150.0)
	_ = f.SetCell(1, "AQI", 100.0)
	_ = f.SetCell(0, "Cyclone_Count", int64(2))
	_ = f.SetCell(0, "District", "Dhaka")

	out, err := (&Auto{}).Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	if out.Rows() != 4 {
		t.Fatalf("row count changed: %d", out.Rows())
	}
	for _, cs := range out.Schema().Columns {
		col, _ := out.ColumnByName(cs.Name)
		for i := 0; i < col.Len(); i++ {
			if col.IsNull(i) {
				t.Fatalf("column %s still missing at row %d", cs.Name, i)
			}
		}
	}
}

func TestAutoLeavesAllMissingColumnAlone(t *testing.T) {
	s := bc.Schema{Columns: []bc.ColumnSchema{{Name: "empty", Type: bc.KindFloat, Nullable: true}}}
	f := bc.NewFrame(s)
	f.AppendNullRow()
	f.AppendNullRow()
	out, err := (&Auto{}).Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	col, _ := out.ColumnByName("empty")
	if !col.IsNull(0) || !col.IsNull(1) {
		t.Fatal("all-missing column should stay null")
	}
}

func TestAutoSkip(t *testing.T) {
	f := makeFloatFrame()
	out, err := (&Auto{Skip: []string{"x"}}).Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	col, _ := out.ColumnByName("x")
	if !col.IsNull(1) {
		t.Fatal("skipped column should not be filled")
	}
}
