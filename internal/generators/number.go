package generators

import "math"

const (
	intMax   = 100000
	floatMax = 1000.0
)

func uniformInt(src Source, _ GeneratorContext) (interface{}, error) {
	return src.Intn(intMax), nil
}

// uniformFloat rounds to two decimals so cells read like amounts.
func uniformFloat(src Source, _ GeneratorContext) (interface{}, error) {
	return math.Round(src.Float64()*floatMax*100) / 100, nil
}
