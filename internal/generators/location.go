package generators

import "fmt"

func city(src Source, _ GeneratorContext) (interface{}, error) {
	return pick(src, cities), nil
}

func state(src Source, _ GeneratorContext) (interface{}, error) {
	return pick(src, states), nil
}

func streetAddress(src Source, _ GeneratorContext) (interface{}, error) {
	return fmt.Sprintf("%s %s, %d", pick(src, streetPrefixes), pick(src, streetNames), 1+src.Intn(9999)), nil
}

// zipCode returns a CEP as NNNNN-NNN.
func zipCode(src Source, _ GeneratorContext) (interface{}, error) {
	return fmt.Sprintf("%05d-%03d", src.Intn(100000), src.Intn(1000)), nil
}
