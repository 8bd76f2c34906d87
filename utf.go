// Package utf provides validation, counting, and transcoding of UTF-8,
// UTF-16, and UTF-32 code unit sequences.
//
// The package is built from three stateless codecs (UTF8, UTF16, UTF32)
// that share a single contract (Codec), and a borrowed-span View that
// composes a codec with a slice of code units to validate, count, and
// transcode whole buffers. All operations are pure: nothing is copied,
// cached, or mutated except the caller-supplied Sink during encoding.
package utf

// Codepoint is a Unicode scalar value candidate. Legal values lie in
// [0, 0xD7FF] and [0xE000, 0x10FFFF]; use ValidCodepoint to check.
type Codepoint uint32

// CodeUnit is the set of storage element types the three encoding forms
// use: bytes for UTF-8, 16-bit units for UTF-16, 32-bit units for UTF-32.
type CodeUnit interface {
	~uint8 | ~uint16 | ~uint32
}

// Unicode range and surrogate constants shared by the codecs.
const (
	// MaxCodepoint is the maximum valid Unicode code point.
	MaxCodepoint = 0x10FFFF

	SurrogateMin     = 0xD800
	SurrogateMax     = 0xDFFF
	HighSurrogateMin = 0xD800
	HighSurrogateMax = 0xDBFF
	LowSurrogateMin  = 0xDC00
	LowSurrogateMax  = 0xDFFF
	SurrogateOffset  = 0x10000
)

// ValidCodepoint reports whether c is a legal Unicode scalar value:
// within range and not a surrogate. It is the single source of truth for
// scalar legality; the codecs validate encoding form only and delegate
// the value check here.
func ValidCodepoint(c Codepoint) bool {
	if c < SurrogateMin {
		return true
	}
	if c <= SurrogateMax {
		return false
	}
	return c <= MaxCodepoint
}
