package generators

import (
	"errors"

	"github.com/go-faker/faker/v4"
)

var errNoPhoneFormatter = errors.New("source has no phone formatter")

func localePhone(src Source, _ GeneratorContext) (interface{}, error) {
	p, ok := src.(PhoneFormatter)
	if !ok {
		return nil, errNoPhoneFormatter
	}
	return p.Phone(), nil
}

func phoneNumber(src Source, ctx GeneratorContext) (interface{}, error) {
	if _, ok := src.(PhoneFormatter); ok {
		return localePhone(src, ctx)
	}
	return faker.Phonenumber(), nil
}

func email(_ Source, _ GeneratorContext) (interface{}, error) {
	return faker.Email(), nil
}

func userName(_ Source, _ GeneratorContext) (interface{}, error) {
	return faker.Username(), nil
}

func url(_ Source, _ GeneratorContext) (interface{}, error) {
	return faker.URL(), nil
}

func ipv4(_ Source, _ GeneratorContext) (interface{}, error) {
	return faker.IPv4(), nil
}
