package banglaclim_test

import (
	"context"
	"math/rand"
	"testing"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
	imp "github.com/raiyank/banglaclim/pkg/transform/impute"
	outl "github.com/raiyank/banglaclim/pkg/transform/outliers"
)

// synthClimate builds a frame shaped like the climate dataset with missp
// of the cells missing.
func synthClimate(n int, missp float64) *bc.Frame {
	s := bc.Schema{Columns: []bc.ColumnSchema{
		{Name: "Year", Type: bc.KindInt, Nullable: true},
		{Name: "District", Type: bc.KindString, Nullable: true},
		{Name: "AQI", Type: bc.KindFloat, Nullable: true},
		{Name: "Forest_Cover_Percent", Type: bc.KindFloat, Nullable: true},
	}}
	districts := []string{"Dhaka", "Khulna", "Rangpur", "Sylhet"}
	rnd := rand.New(rand.NewSource(42))
	f := bc.NewFrame(s)
	for i := 0; i < n; i++ {
		f.AppendNullRow()
		if rnd.Float64() >= missp {
			_ = f.SetCell(i, "Year", int64(1980+rnd.Intn(40)))
		}
		if rnd.Float64() >= missp {
			_ = f.SetCell(i, "District", districts[rnd.Intn(len(districts))])
		}
		if rnd.Float64() >= missp {
			_ = f.SetCell(i, "AQI", rnd.Float64()*300)
		}
		if rnd.Float64() >= missp {
			_ = f.SetCell(i, "Forest_Cover_Percent", rnd.Float64()*100)
		}
	}
	return f
}

func BenchmarkCleanPipeline(b *testing.B) {
	base := synthClimate(10000, 0.1)
	p := bc.NewPipeline().Add(&imp.Auto{}).Add(&outl.IQRClip{})
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := p.Run(context.Background(), base); err != nil {
			b.Fatal(err)
		}
	}
}
