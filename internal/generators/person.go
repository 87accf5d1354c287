package generators

func firstName(src Source, _ GeneratorContext) (interface{}, error) {
	return pick(src, firstNames), nil
}

func lastName(src Source, _ GeneratorContext) (interface{}, error) {
	return pick(src, lastNames), nil
}

func fullName(src Source, _ GeneratorContext) (interface{}, error) {
	name := pick(src, firstNames) + " " + pick(src, lastNames)
	if src.Intn(3) == 0 {
		name += " " + pick(src, lastNames)
	}
	return name, nil
}

func companyName(src Source, _ GeneratorContext) (interface{}, error) {
	switch src.Intn(3) {
	case 0:
		return pick(src, lastNames) + " e " + pick(src, lastNames), nil
	case 1:
		return pick(src, lastNames) + ", " + pick(src, lastNames) + " e " + pick(src, lastNames), nil
	default:
		return pick(src, lastNames) + " " + pick(src, companySuffixes), nil
	}
}
