// Package golearn converts between banglaclim frames and golearn
// DenseInstances so a processed climate table can feed external ML
// tooling. Nothing in this repository trains a model.
package golearn

import (
	"fmt"

	"github.com/sjwhitworth/golearn/base"

	bc "github.com/raiyank/banglaclim/pkg/banglaclim"
)

// ToDenseInstances converts a Frame into golearn DenseInstances. The named
// class column becomes the class attribute; an empty name picks the last
// column.
func ToDenseInstances(f *bc.Frame, classColumn string) (*base.DenseInstances, error) {
	cols := f.Schema().Columns
	if len(cols) == 0 {
		return nil, fmt.Errorf("empty schema")
	}
	classIdx := len(cols) - 1
	if classColumn != "" {
		classIdx = -1
		for i, cs := range cols {
			if cs.Name == classColumn {
				classIdx = i
				break
			}
		}
		if classIdx < 0 {
			return nil, fmt.Errorf("class column %s not in frame", classColumn)
		}
	}

	attrs := make([]base.Attribute, len(cols))
	for i, cs := range cols {
		switch cs.Type {
		case bc.KindFloat, bc.KindInt:
			attrs[i] = base.NewFloatAttribute(cs.Name)
		default:
			ca := new(base.CategoricalAttribute)
			ca.SetName(cs.Name)
			attrs[i] = ca
		}
	}
	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		specs[i] = inst.AddAttribute(a)
	}
	if err := inst.Extend(f.Rows()); err != nil {
		return nil, err
	}

	for r := 0; r < f.Rows(); r++ {
		for c, cs := range cols {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case bc.KindFloat:
				if v, ok := col.(*bc.FloatColumn).Get(r); ok {
					inst.Set(specs[c], r, base.PackFloatToBytes(v))
				}
			case bc.KindInt:
				if v, ok := col.(*bc.IntColumn).Get(r); ok {
					inst.Set(specs[c], r, base.PackFloatToBytes(float64(v)))
				}
			default:
				if v, ok := col.(*bc.StringColumn).Get(r); ok {
					inst.Set(specs[c], r, base.Attribute.GetSysValFromString(attrs[c], v))
				}
			}
		}
	}
	if err := inst.AddClassAttribute(attrs[classIdx]); err != nil {
		return nil, err
	}
	return inst, nil
}

// FromDenseInstances converts golearn DenseInstances into a Frame.
func FromDenseInstances(inst *base.DenseInstances) (*bc.Frame, error) {
	attrs := inst.AllAttributes()
	schema := bc.Schema{Columns: make([]bc.ColumnSchema, len(attrs))}
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		k := bc.KindString
		if a.GetType() == base.Float64Type {
			k = bc.KindFloat
		}
		schema.Columns[i] = bc.ColumnSchema{Name: a.GetName(), Type: k, Nullable: true}
		spec, err := inst.GetAttribute(a)
		if err != nil {
			return nil, err
		}
		specs[i] = spec
	}
	f := bc.NewFrame(schema)
	_, nrows := inst.Size()
	for r := 0; r < nrows; r++ {
		f.AppendNullRow()
		for c, cs := range schema.Columns {
			switch cs.Type {
			case bc.KindFloat:
				v := base.UnpackBytesToFloat(inst.Get(specs[c], r))
				_ = f.SetCell(r, cs.Name, v)
			default:
				v := base.Attribute.GetStringFromSysVal(specs[c].GetAttribute(), inst.Get(specs[c], r))
				_ = f.SetCell(r, cs.Name, v)
			}
		}
	}
	return f, nil
}
