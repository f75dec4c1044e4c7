package profile

import (
	"strings"
	"testing"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
)

func TestMissingReport(t *testing.T) {
	s := bc.Schema{Columns: []bc.ColumnSchema{
		{Name: "AQI", Type: bc.KindFloat, Nullable: true},
		{Name: "District", Type: bc.KindString, Nullable: true},
	}}
	f := bc.NewFrame(s)
	for i := 0; i < 3; i++ {
		f.AppendNullRow()
	}
	_ = f.SetCell(0, "AQI", 150.0)
	_ = f.SetCell(0, "District", "Dhaka")
	_ = f.SetCell(1, "District", "Dhaka")

	profiles := Collect(f)
	if len(profiles) != 2 {
		t.Fatalf("got %d profiles, want 2", len(profiles))
	}
	if profiles[0].Missing() != 2 || profiles[1].Missing() != 1 {
		t.Fatalf("missing counts = %d,%d, want 2,1", profiles[0].Missing(), profiles[1].Missing())
	}
	report := MissingReport(profiles)
	if !strings.Contains(report, "AQI: 2") || !strings.Contains(report, "District: 1") {
		t.Fatalf("report missing counts:\n%s", report)
	}
	if profiles[1].Str.Freqs["Dhaka"] != 2 {
		t.Fatalf("district frequency = %d, want 2", profiles[1].Str.Freqs["Dhaka"])
	}
}
