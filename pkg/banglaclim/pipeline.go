package banglaclim

import "context"

// Transform is a mutation or validation applied to a Frame.
type Transform interface {
	Name() string
	Apply(ctx context.Context, f *Frame) (*Frame, error)
}

// Pipeline composes a sequence of Transforms.
type Pipeline struct {
	steps []Transform
}

func NewPipeline() *Pipeline { return &Pipeline{} }

func (p *Pipeline) Add(t Transform) *Pipeline {
	p.steps = append(p.steps, t)
	return p
}

// Run applies the pipeline to a clone of f. The caller's frame is never
// mutated; transforms are free to work in place on the clone.
func (p *Pipeline) Run(ctx context.Context, f *Frame) (*Frame, error) {
	cur := f.Clone()
	var err error
	for _, t := range p.steps {
		cur, err = t.Apply(ctx, cur)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
