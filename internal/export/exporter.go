package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmrzaf/fakesheet/internal/domain"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Exporter serializes a grid into one self-contained document.
type Exporter interface {
	Export(grid *domain.Grid, sheetLabel string) ([]byte, error)
	ContentType() string
	Extension() string
}

func ForFormat(format string) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", domain.FormatXLSX:
		return NewXLSXExporter(), nil
	case domain.FormatSQLite:
		return NewSQLiteExporter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func IsKnownFormat(format string) bool {
	_, err := ForFormat(format)
	return err == nil
}

func headerStrings(grid *domain.Grid) []string {
	headers := grid.Headers()
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = fmt.Sprint(h)
	}
	return out
}
