package generators

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCPF_KnownDigits(t *testing.T) {
	got, err := FormatCPF([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, "123.456.789-00", got)
}

func TestCPFCheckDigits_RealExample(t *testing.T) {
	// 529.982.247-25 is the usual textbook CPF.
	first, second, err := CPFCheckDigits([]int{5, 2, 9, 9, 8, 2, 2, 4, 7})
	require.NoError(t, err)
	assert.Equal(t, 2, first)
	assert.Equal(t, 5, second)
}

func TestCNPJCheckDigits_RealExample(t *testing.T) {
	// 11.222.333/0001-81
	first, second, err := CNPJCheckDigits([]int{1, 1, 2, 2, 2, 3, 3, 3, 0, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 8, first)
	assert.Equal(t, 1, second)

	got, err := FormatCNPJ([]int{1, 1, 2, 2, 2, 3, 3, 3, 0, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, "11.222.333/0001-81", got)
}

func TestCheckDigits_RejectWrongLength(t *testing.T) {
	_, _, err := CPFCheckDigits([]int{1, 2, 3})
	assert.Error(t, err)
	_, _, err = CNPJCheckDigits([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	assert.Error(t, err)
	_, _, err = CPFCheckDigits([]int{1, 2, 3, 4, 5, 6, 7, 8, 10})
	assert.Error(t, err)
}

func TestCheckDigits_RangeAndIdempotence(t *testing.T) {
	src := NewLocaleSource(42, time.Now())
	for i := 0; i < 500; i++ {
		cpf := digits(src, cpfBaseLen)
		a1, a2, err := CPFCheckDigits(cpf)
		require.NoError(t, err)
		b1, b2, _ := CPFCheckDigits(cpf)
		assert.Equal(t, a1, b1)
		assert.Equal(t, a2, b2)
		assert.True(t, a1 >= 0 && a1 <= 9 && a2 >= 0 && a2 <= 9, "cpf check digits out of range: %d %d", a1, a2)

		cnpj := digits(src, cnpjBaseLen)
		c1, c2, err := CNPJCheckDigits(cnpj)
		require.NoError(t, err)
		d1, d2, _ := CNPJCheckDigits(cnpj)
		assert.Equal(t, c1, d1)
		assert.Equal(t, c2, d2)
		assert.True(t, c1 >= 0 && c1 <= 9 && c2 >= 0 && c2 <= 9, "cnpj check digits out of range: %d %d", c1, c2)
	}
}

func TestCyclicWeightedSum_WrapsFromTwoToNine(t *testing.T) {
	ones := []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	// 5+4+3+2+9+8+7+6+5+4+3+2
	assert.Equal(t, 58, cyclicWeightedSum(ones, 5))
	// 6+5+4+3+2+9+8+7+6+5+4+3
	assert.Equal(t, 62, cyclicWeightedSum(ones, 6))
}

func TestGeneratedDocumentsMatchLayout(t *testing.T) {
	src := NewLocaleSource(7, time.Now())
	cpfRe := regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	cnpjRe := regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)
	for i := 0; i < 50; i++ {
		v, err := CPF.Generate(src, GeneratorContext{RowIndex: i})
		require.NoError(t, err)
		assert.Regexp(t, cpfRe, v)

		v, err = CNPJ.Generate(src, GeneratorContext{RowIndex: i})
		require.NoError(t, err)
		assert.Regexp(t, cnpjRe, v)
	}
}
