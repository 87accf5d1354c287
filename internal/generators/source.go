package generators

import (
	"fmt"
	"math/rand"
	"time"
)

// Source is the per-request supply of randomness every rule draws from.
// A Source is not safe for concurrent use; build one per request.
type Source interface {
	Intn(n int) int
	Int63n(n int64) int64
	Float64() float64
	Read(p []byte) (int, error)
	Now() time.Time
}

// Booler is implemented by sources that generate booleans themselves.
type Booler interface {
	Bool() bool
}

// PhoneFormatter is implemented by sources that know the locale's phone layout.
type PhoneFormatter interface {
	Phone() string
}

// LocaleSource is the pt-BR Source used for every exported document.
type LocaleSource struct {
	*rand.Rand
	now time.Time
}

func NewLocaleSource(seed int64, now time.Time) *LocaleSource {
	return &LocaleSource{
		Rand: rand.New(rand.NewSource(seed)),
		now:  now,
	}
}

func (s *LocaleSource) Now() time.Time {
	return s.now
}

func (s *LocaleSource) Bool() bool {
	return s.Intn(2) == 1
}

// Phone returns a mobile number as "(DD) 9NNNN-NNNN".
func (s *LocaleSource) Phone() string {
	ddd := areaCodes[s.Intn(len(areaCodes))]
	return fmt.Sprintf("(%d) 9%04d-%04d", ddd, s.Intn(10000), s.Intn(10000))
}

func pick(src Source, list []string) string {
	return list[src.Intn(len(list))]
}

func digits(src Source, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = src.Intn(10)
	}
	return out
}
