package generators

import (
	"github.com/mmrzaf/fakesheet/internal/timeutil"
)

const (
	pastWindow   = "-365d"
	futureWindow = "+365d"
	recentWindow = "-1d"
)

func dateIn(window string) GeneratorFunc {
	return func(src Source, _ GeneratorContext) (interface{}, error) {
		from, to, err := timeutil.ParseWindow(window, src.Now())
		if err != nil {
			return nil, err
		}
		return timeutil.RandomBetween(src, from, to), nil
	}
}
