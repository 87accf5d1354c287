package generators

import (
	"fmt"
	"strings"
)

const (
	cpfBaseLen  = 9
	cnpjBaseLen = 12
)

// CPFCheckDigits computes the two CPF check digits for nine base digits.
func CPFCheckDigits(base []int) (int, int, error) {
	if err := checkBase(base, cpfBaseLen); err != nil {
		return 0, 0, err
	}
	sum := 0
	for i, d := range base {
		sum += d * (10 - i)
	}
	first := mod11(sum)

	sum = 0
	for i, d := range base {
		sum += d * (11 - i)
	}
	sum += first * 2
	return first, mod11(sum), nil
}

// CNPJCheckDigits computes the two CNPJ check digits for twelve base digits.
// Weights run down from 5 (first digit) or 6 (second digit) and wrap from 2 to 9.
func CNPJCheckDigits(base []int) (int, int, error) {
	if err := checkBase(base, cnpjBaseLen); err != nil {
		return 0, 0, err
	}
	first := mod11(cyclicWeightedSum(base, 5))
	second := mod11(cyclicWeightedSum(base, 6) + first*2)
	return first, second, nil
}

// FormatCPF renders nine base digits as DDD.DDD.DDD-CC.
func FormatCPF(base []int) (string, error) {
	first, second, err := CPFCheckDigits(base)
	if err != nil {
		return "", err
	}
	s := joinDigits(base)
	return fmt.Sprintf("%s.%s.%s-%d%d", s[0:3], s[3:6], s[6:9], first, second), nil
}

// FormatCNPJ renders twelve base digits as DD.DDD.DDD/DDDD-CC.
func FormatCNPJ(base []int) (string, error) {
	first, second, err := CNPJCheckDigits(base)
	if err != nil {
		return "", err
	}
	s := joinDigits(base)
	return fmt.Sprintf("%s.%s.%s/%s-%d%d", s[0:2], s[2:5], s[5:8], s[8:12], first, second), nil
}

func cyclicWeightedSum(base []int, weight int) int {
	sum := 0
	for _, d := range base {
		sum += d * weight
		if weight == 2 {
			weight = 9
		} else {
			weight--
		}
	}
	return sum
}

func mod11(sum int) int {
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func checkBase(base []int, n int) error {
	if len(base) != n {
		return fmt.Errorf("expected %d base digits, got %d", n, len(base))
	}
	for _, d := range base {
		if d < 0 || d > 9 {
			return fmt.Errorf("invalid digit: %d", d)
		}
	}
	return nil
}

func joinDigits(base []int) string {
	var b strings.Builder
	b.Grow(len(base))
	for _, d := range base {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

func generateCPF(src Source, _ GeneratorContext) (interface{}, error) {
	return FormatCPF(digits(src, cpfBaseLen))
}

func generateCNPJ(src Source, _ GeneratorContext) (interface{}, error) {
	return FormatCNPJ(digits(src, cnpjBaseLen))
}
