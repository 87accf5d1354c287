package generators

import "github.com/mmrzaf/fakesheet/internal/domain"

// Generator produces one cell value.
type Generator interface {
	Generate(src Source, ctx GeneratorContext) (interface{}, error)
}

type GeneratorContext struct {
	RowIndex int
	Column   domain.Column
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(src Source, ctx GeneratorContext) (interface{}, error)

func (f GeneratorFunc) Generate(src Source, ctx GeneratorContext) (interface{}, error) {
	return f(src, ctx)
}
