package crypto

import (
	"crypto/rand"
	"math"
)

const (
	idAlphabet string = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
	idSize     int    = 22 // 22 * 6 = 132 bits (uuid is 128 bits) of entropy
)

// NanoIDGenerator produces short, URL-safe unique identifiers.
// Used for task IDs, where opaque uniqueness is all that matters.
type NanoIDGenerator struct {
	mask int
}

func NewNanoID() *NanoIDGenerator {
	mask := 1
	for mask < len(idAlphabet)-1 {
		mask = mask<<1 | 1
	}
	return &NanoIDGenerator{mask: mask}
}

func (n *NanoIDGenerator) Generate(length ...int) (string, error) {
	size := idSize
	if len(length) > 0 && length[0] > 0 {
		size = length[0]
	}

	alphabetLen := len(idAlphabet)
	step := int(math.Ceil(1.6 * float64(n.mask*size) / float64(alphabetLen)))

	id := make([]byte, size)
	buffer := make([]byte, step)

	for position := 0; position < size; {
		if _, err := rand.Read(buffer); err != nil {
			return "", err
		}

		// Map random bytes to alphabet characters, discarding candidates
		// outside the alphabet range to keep the distribution uniform
		for i := 0; i < step && position < size; i++ {
			index := buffer[i] & byte(n.mask)

			if int(index) < alphabetLen {
				id[position] = idAlphabet[index]
				position++
			}
		}
	}

	return string(id), nil
}
