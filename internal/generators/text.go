package generators

import "github.com/go-faker/faker/v4"

func loremWord(_ Source, _ GeneratorContext) (interface{}, error) {
	return faker.Word(), nil
}

func loremSentence(_ Source, _ GeneratorContext) (interface{}, error) {
	return faker.Sentence(), nil
}

func loremParagraph(_ Source, _ GeneratorContext) (interface{}, error) {
	return faker.Paragraph(), nil
}
