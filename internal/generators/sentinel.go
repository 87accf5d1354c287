package generators

func rowIndex(_ Source, ctx GeneratorContext) (interface{}, error) {
	return ctx.RowIndex + 1, nil
}

func empty(_ Source, _ GeneratorContext) (interface{}, error) {
	return "", nil
}

func customValue(_ Source, ctx GeneratorContext) (interface{}, error) {
	if ctx.Column.CustomValue == nil {
		return "", nil
	}
	return *ctx.Column.CustomValue, nil
}

// yesNo falls back to a coin flip when the source has no boolean generator.
func yesNo(src Source, _ GeneratorContext) (interface{}, error) {
	var v bool
	if b, ok := src.(Booler); ok {
		v = b.Bool()
	} else {
		v = src.Intn(2) == 1
	}
	if v {
		return labelYes, nil
	}
	return labelNo, nil
}
