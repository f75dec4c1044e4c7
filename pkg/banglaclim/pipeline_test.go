package banglaclim_test

import (
	"context"
	"testing"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
	imp "github.com/raiyank/banglaclim/pkg/transform/impute"
	std "github.com/raiyank/banglaclim/pkg/transform/standardize"
)

func TestPipeline(t *testing.T) {
	s := bc.Schema{Columns: []bc.ColumnSchema{
		{Name: "AQI", Type: bc.KindFloat, Nullable: true},
		{Name: "District", Type: bc.KindString, Nullable: true},
	}}
	f := bc.NewFrame(s)
	for i := 0; i < 2; i++ {
		f.AppendNullRow()
	}
	_ = f.SetCell(0, "AQI", 150.0)
	_ = f.SetCell(0, "District", " Dhaka ")
	// row 1 left nulls

	p := bc.NewPipeline().Add(&imp.Auto{}).Add(&std.Trim{Column: "District"})
	out, err := p.Run(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	col, _ := out.ColumnByName("AQI")
	if col.IsNull(1) {
		t.Fatal("imputer failed to fill null")
	}
	dc, _ := out.ColumnByName("District")
	if v, _ := dc.(*bc.StringColumn).Get(0); v != "Dhaka" {
		t.Fatalf("trim failed, got %q", v)
	}
}

// Run must hand each stage a copy, never the caller's frame.
func TestPipelineCopyOnWrite(t *testing.T) {
	s := bc.Schema{Columns: []bc.ColumnSchema{{Name: "AQI", Type: bc.KindFloat, Nullable: true}}}
	f := bc.NewFrame(s)
	f.AppendNullRow()
	f.AppendNullRow()
	_ = f.SetCell(0, "AQI", 150.0)

	out, err := bc.NewPipeline().Add(&imp.Auto{}).Run(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	orig, _ := f.ColumnByName("AQI")
	if !orig.IsNull(1) {
		t.Fatal("pipeline mutated the caller's frame")
	}
	filled, _ := out.ColumnByName("AQI")
	if filled.IsNull(1) {
		t.Fatal("output not filled")
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := bc.Schema{Columns: []bc.ColumnSchema{{Name: "x", Type: bc.KindInt, Nullable: true}}}
	f := bc.NewFrame(s)
	f.AppendNullRow()
	_ = f.SetCell(0, "x", int64(7))
	g := f.Clone()
	_ = g.SetCell(0, "x", int64(9))
	col, _ := f.ColumnByName("x")
	if v, _ := col.(*bc.IntColumn).Get(0); v != 7 {
		t.Fatalf("clone aliases original: %d", v)
	}
}

func TestAddColumnRejectsDuplicate(t *testing.T) {
	s := bc.Schema{Columns: []bc.ColumnSchema{{Name: "x", Type: bc.KindInt, Nullable: true}}}
	f := bc.NewFrame(s)
	if _, err := f.AddColumn(bc.ColumnSchema{Name: "x", Type: bc.KindFloat, Nullable: true}); err == nil {
		t.Fatal("want error adding duplicate column")
	}
}
