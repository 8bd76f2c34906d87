package utf

// Codec is the contract shared by the three encoding forms. A codec is a
// stateless value; all methods are pure functions of their arguments.
//
// The operations split cleanly into two regimes. ReadLength,
// WriteLength, and ValidateSequence are total and safe on arbitrary
// input. Encode and Decode carry preconditions: Encode panics when asked
// for an unencodable scalar (WriteLength 0), and Decode assumes its
// input already passed ValidateSequence — its result on malformed input
// is unspecified.
type Codec[U CodeUnit] interface {
	// ReadLength classifies a lead unit and returns how many units the
	// sequence it begins occupies. For unrecognized lead patterns it
	// returns 1 so that callers always make forward progress; the
	// sequence still fails ValidateSequence.
	ReadLength(lead U) int

	// WriteLength returns the number of units needed to encode c, or 0
	// when c is not encodable in this form (the surrogate range, and
	// values beyond MaxCodepoint).
	WriteLength(c Codepoint) int

	// ValidateSequence reports whether units holds exactly one
	// well-formed encoded sequence. It checks encoding form only — lead
	// pattern, trailing units, overlong and out-of-range forms — not
	// scalar legality; pair it with ValidCodepoint for that.
	ValidateSequence(units []U) bool

	// Encode writes the encoding of c to dst and returns the number of
	// units written, always equal to WriteLength(c). Encoding a scalar
	// with WriteLength 0 is a contract violation and panics: callers
	// must only encode values they have proven valid.
	Encode(c Codepoint, dst Sink[U]) int

	// Decode returns the scalar encoded at the start of units. It does
	// not re-validate; units must already have passed ValidateSequence.
	Decode(units []U) Codepoint
}

var (
	_ Codec[byte]   = UTF8{}
	_ Codec[uint16] = UTF16{}
	_ Codec[uint32] = UTF32{}
)
