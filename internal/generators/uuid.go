package generators

import (
	"github.com/google/uuid"
)

// uuid4 draws the 16 bytes from the source so seeded requests repeat.
func uuid4(src Source, _ GeneratorContext) (interface{}, error) {
	b := make([]byte, 16)
	if _, err := src.Read(b); err != nil {
		return nil, err
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	u, err := uuid.FromBytes(b)
	if err != nil {
		return nil, err
	}
	return u.String(), nil
}
