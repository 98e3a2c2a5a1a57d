package payment

import (
	"crypto/rand"
	"strings"
)

const (
	DefaultReferencePrefix = "TX"
	DefaultReferenceSize   = 15

	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// largest multiple of len(referenceAlphabet) that fits in a byte
	referenceByteLimit = 252
)

// Reference correlates initialization and verification at the rail.
type Reference string

func (r Reference) String() string { return string(r) }

func (r Reference) IsZero() bool { return r == "" }

type ReferenceGenerator struct {
	prefix string
	size   int
}

func NewReferenceGenerator() *ReferenceGenerator {
	return &ReferenceGenerator{prefix: DefaultReferencePrefix, size: DefaultReferenceSize}
}

func NewReferenceGeneratorWith(prefix string, size int) *ReferenceGenerator {
	if size <= 0 {
		size = DefaultReferenceSize
	}
	return &ReferenceGenerator{prefix: prefix, size: size}
}

// Generate returns prefix-XXXXXXXXXXXXXXX drawn uniformly from A-Z0-9.
func (g *ReferenceGenerator) Generate() Reference {
	var sb strings.Builder
	if g.prefix != "" {
		sb.Grow(len(g.prefix) + 1 + g.size)
		sb.WriteString(g.prefix)
		sb.WriteByte('-')
	}

	buf := make([]byte, g.size*2)
	written := 0
	for written < g.size {
		// crypto/rand.Read never returns an error
		_, _ = rand.Read(buf)
		for _, b := range buf {
			if b >= referenceByteLimit {
				continue
			}
			sb.WriteByte(referenceAlphabet[int(b)%len(referenceAlphabet)])
			written++
			if written == g.size {
				break
			}
		}
	}
	return Reference(sb.String())
}
