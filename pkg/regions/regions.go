// Package regions partitions a climate table into named district groups.
package regions

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
)

// Other collects every row whose district matches no configured region.
const Other = "other"

// Region names a group of districts. Matching is exact, including
// apostrophes and case; fix spelling upstream with the standardize
// transforms rather than loosening the match here.
type Region struct {
	Name      string   `yaml:"name"`
	Districts []string `yaml:"districts"`
}

// Default returns the built-in region lists for Bangladesh.
func Default() []Region {
	return []Region{
		{Name: "coastal", Districts: []string{"Cox's Bazar", "Chattogram", "Khulna", "Barishal", "Satkhira", "Patuakhali"}},
		{Name: "northern", Districts: []string{"Rangpur", "Rajshahi", "Dinajpur", "Bogura", "Panchagarh", "Thakurgaon"}},
		{Name: "central", Districts: []string{"Dhaka", "Gazipur", "Narayanganj", "Tangail", "Mymensingh"}},
	}
}

// Load reads a region mapping from a YAML file:
//
//	regions:
//	  - name: coastal
//	    districts: ["Cox's Bazar", Chattogram]
func Load(path string) ([]Region, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Regions []Region `yaml:"regions"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse region config %s: %w", path, err)
	}
	if len(doc.Regions) == 0 {
		return nil, fmt.Errorf("region config %s: no regions defined", path)
	}
	return doc.Regions, nil
}

// Partition splits f into one new frame per region plus Other. Every input
// row lands in exactly one group; a district claimed by an earlier region
// in the list is not reclaimed by a later one, so outputs stay disjoint
// even with overlapping configuration. The input frame is not mutated.
func Partition(f *bc.Frame, column string, regs []Region) (map[string]*bc.Frame, error) {
	col, ok := f.ColumnByName(column)
	if !ok {
		return nil, fmt.Errorf("partition: missing column %s", column)
	}
	sc, ok := col.(*bc.StringColumn)
	if !ok {
		return nil, fmt.Errorf("partition: column %s is not categorical", column)
	}

	byDistrict := make(map[string]string)
	out := make(map[string]*bc.Frame, len(regs)+1)
	for _, r := range regs {
		if _, dup := out[r.Name]; dup {
			return nil, fmt.Errorf("partition: duplicate region %s", r.Name)
		}
		out[r.Name] = bc.NewFrame(f.Schema())
		for _, d := range r.Districts {
			if _, claimed := byDistrict[d]; !claimed {
				byDistrict[d] = r.Name
			}
		}
	}
	out[Other] = bc.NewFrame(f.Schema())

	for i := 0; i < f.Rows(); i++ {
		group := Other
		if d, ok := sc.Get(i); ok {
			if name, ok := byDistrict[d]; ok {
				group = name
			}
		}
		out[group].AppendRowFrom(f, i)
	}
	return out, nil
}
