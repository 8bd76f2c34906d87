package utf

import "fmt"

// UTF8 is the UTF-8 codec. Code units are bytes; a scalar occupies one
// to four units.
type UTF8 struct{}

// ReadLength classifies the lead byte by its high bits: 0xxxxxxx is a
// one-byte sequence, 110xxxxx two, 1110xxxx three, 11110xxx four. Any
// other pattern (a stray continuation byte, or 0xF8 and above) reports 1
// so the caller advances; ValidateSequence rejects it.
func (UTF8) ReadLength(lead byte) int {
	switch {
	case lead&0x80 == 0x00:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	}
	return 1
}

// WriteLength returns the minimal encoded length of c, or 0 for
// surrogate-range and out-of-range values.
func (UTF8) WriteLength(c Codepoint) int {
	switch {
	case c <= 0x7F:
		return 1
	case c < 0x800:
		return 2
	case c < SurrogateMin:
		return 3
	case c <= SurrogateMax:
		return 0
	case c < 0x10000:
		return 3
	case c <= MaxCodepoint:
		return 4
	}
	return 0
}

// ValidateSequence reports whether units holds exactly one well-formed
// UTF-8 sequence: the lead byte's form matches the length, every
// trailing byte is 10xxxxxx, and the sequence is neither overlong nor
// beyond U+10FFFF. Surrogate values (ED A0 80 .. ED BF BF) pass the form
// check here; ValidCodepoint rejects them on the decoded value.
func (UTF8) ValidateSequence(units []byte) bool {
	if len(units) < 1 || len(units) > 4 {
		return false
	}
	lead := units[0]

	switch len(units) {
	case 1:
		if lead&0x80 != 0x00 {
			return false
		}
	case 2:
		if lead&0xE0 != 0xC0 {
			return false
		}
	case 3:
		if lead&0xF0 != 0xE0 {
			return false
		}
	case 4:
		if lead&0xF8 != 0xF0 {
			return false
		}
	}

	for _, u := range units[1:] {
		if u&0xC0 != 0x80 {
			return false
		}
	}

	// Overlong and out-of-range forms.
	switch len(units) {
	case 2:
		// C0, C1 can only encode values below 0x80.
		if lead <= 0xC1 {
			return false
		}
	case 3:
		// E0 with second byte below A0 encodes values below 0x800.
		if lead == 0xE0 && units[1] < 0xA0 {
			return false
		}
	case 4:
		// F0 with second byte below 90 encodes values below 0x10000.
		if lead == 0xF0 && units[1] < 0x90 {
			return false
		}
		// F4 with second byte above 8F, and leads F5..F7, encode
		// values above U+10FFFF.
		if lead > 0xF4 || (lead == 0xF4 && units[1] > 0x8F) {
			return false
		}
	}

	return true
}

// Encode writes the UTF-8 encoding of c to dst and returns the number of
// bytes written. Panics if c is not encodable (surrogate or out of
// range); validate before encoding.
func (e UTF8) Encode(c Codepoint, dst Sink[byte]) int {
	n := e.WriteLength(c)
	v := uint32(c)

	var buf [4]byte
	for i := n; i > 1; i-- {
		buf[i-1] = 0x80 | byte(v&0x3F)
		v >>= 6
	}

	switch n {
	case 1:
		buf[0] = byte(v)
	case 2:
		buf[0] = 0xC0 | byte(v)
	case 3:
		buf[0] = 0xE0 | byte(v)
	case 4:
		buf[0] = 0xF0 | byte(v)
	default:
		panic(fmt.Sprintf("utf: U+%04X is not encodable in UTF-8", uint32(c)))
	}

	for _, u := range buf[:n] {
		dst.Put(u)
	}
	return n
}

// Decode returns the scalar encoded at the start of units. The sequence
// must already have passed ValidateSequence; the result on malformed
// input is unspecified.
func (e UTF8) Decode(units []byte) Codepoint {
	lead := units[0]
	n := e.ReadLength(lead)

	var v uint32
	switch n {
	case 1:
		v = uint32(lead)
	case 2:
		v = uint32(lead & 0x1F)
	case 3:
		v = uint32(lead & 0x0F)
	case 4:
		v = uint32(lead & 0x07)
	}

	for _, u := range units[1:n] {
		v = v<<6 | uint32(u&0x3F)
	}
	return Codepoint(v)
}
