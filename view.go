package utf

import "unsafe"

// View is an immutable, non-owning span of code units in one encoding.
// It borrows the caller's slice without copying; the view must not
// outlive the buffer it borrows. A view carries no decoded state — every
// query re-walks the span.
type View[U CodeUnit] struct {
	codec Codec[U]
	units []U
}

// NewView returns a view over units in the encoding implemented by
// codec.
func NewView[U CodeUnit](codec Codec[U], units []U) View[U] {
	return View[U]{codec: codec, units: units}
}

// UTF8View returns a view over UTF-8 code units.
func UTF8View(units []byte) View[byte] {
	return NewView[byte](UTF8{}, units)
}

// UTF16View returns a view over UTF-16 code units.
func UTF16View(units []uint16) View[uint16] {
	return NewView[uint16](UTF16{}, units)
}

// UTF32View returns a view over UTF-32 code units.
func UTF32View(units []uint32) View[uint32] {
	return NewView[uint32](UTF32{}, units)
}

// Units returns the borrowed span.
func (v View[U]) Units() []U {
	return v.units
}

// Validate reports whether the entire span decodes to a well-formed
// sequence of legal scalar values. Each step bounds-checks the candidate
// sequence against the end of the span, form-validates it, and checks
// the decoded scalar with ValidCodepoint.
func (v View[U]) Validate() bool {
	for i := 0; i < len(v.units); {
		n := v.codec.ReadLength(v.units[i])
		if len(v.units)-i < n {
			return false
		}
		seq := v.units[i : i+n]
		if !v.codec.ValidateSequence(seq) {
			return false
		}
		if !ValidCodepoint(v.codec.Decode(seq)) {
			return false
		}
		i += n
	}
	return true
}

// CodepointCount returns the number of scalar values in the span,
// walking by ReadLength without validating. The span must already have
// passed Validate; the result on malformed input is unspecified.
func (v View[U]) CodepointCount() int {
	count := 0
	for i := 0; i < len(v.units); count++ {
		i += v.codec.ReadLength(v.units[i])
	}
	return count
}

// CodeUnitCount returns the number of code units in the span. O(1).
func (v View[U]) CodeUnitCount() int {
	return len(v.units)
}

// ByteLength returns the storage size of the span in bytes: the unit
// count times the unit width.
func (v View[U]) ByteLength() int {
	var z U
	return len(v.units) * int(unsafe.Sizeof(z))
}

// CodeUnitCountIn returns the number of target code units the span's
// scalars occupy when encoded in target's form — the exact destination
// length for Transcode, computed without writing output. The span must
// already have passed Validate. A scalar that target cannot encode
// contributes 0 units; under the validation precondition this cannot
// happen, since every legal scalar is encodable in all three forms.
func CodeUnitCountIn[S, D CodeUnit](v View[S], target Codec[D]) int {
	total := 0
	for i := 0; i < len(v.units); {
		n := v.codec.ReadLength(v.units[i])
		total += target.WriteLength(v.codec.Decode(v.units[i : i+n]))
		i += n
	}
	return total
}

// ByteLengthIn returns the storage size in bytes of the span transcoded
// into target's form.
func ByteLengthIn[S, D CodeUnit](v View[S], target Codec[D]) int {
	var z D
	return CodeUnitCountIn(v, target) * int(unsafe.Sizeof(z))
}

// Transcode walks the span once, decoding each scalar with the view's
// codec and immediately re-encoding it with target into dst, preserving
// order. No intermediate buffer is used. Returns the number of units
// written. The span must already have passed Validate.
func Transcode[S, D CodeUnit](v View[S], target Codec[D], dst Sink[D]) int {
	written := 0
	for i := 0; i < len(v.units); {
		n := v.codec.ReadLength(v.units[i])
		written += target.Encode(v.codec.Decode(v.units[i:i+n]), dst)
		i += n
	}
	return written
}

// TranscodeToSlice transcodes the span into a freshly allocated slice
// sized exactly by CodeUnitCountIn. The span must already have passed
// Validate.
func TranscodeToSlice[S, D CodeUnit](v View[S], target Codec[D]) []D {
	buf := NewBuffer[D](CodeUnitCountIn(v, target))
	Transcode(v, target, buf)
	return buf.Units()
}
