package utf

// Sink receives code units one at a time. It is the only capability the
// encoders and the transcoder require of their output.
type Sink[U CodeUnit] interface {
	Put(U)
}

// Buffer is a growable in-memory Sink. The zero value is ready to use.
type Buffer[U CodeUnit] struct {
	units []U
}

// NewBuffer returns a Buffer with capacity for n units.
func NewBuffer[U CodeUnit](n int) *Buffer[U] {
	return &Buffer[U]{units: make([]U, 0, n)}
}

// Put appends one unit.
func (b *Buffer[U]) Put(u U) {
	b.units = append(b.units, u)
}

// Units returns the accumulated units. The slice aliases the buffer's
// storage and is valid until the next Put or Reset.
func (b *Buffer[U]) Units() []U {
	return b.units
}

// Len returns the number of accumulated units.
func (b *Buffer[U]) Len() int {
	return len(b.units)
}

// Reset discards accumulated units, keeping the storage.
func (b *Buffer[U]) Reset() {
	b.units = b.units[:0]
}

// CountSink counts units without storing them.
type CountSink[U CodeUnit] struct {
	n int
}

// Put discards the unit and increments the count.
func (s *CountSink[U]) Put(U) {
	s.n++
}

// Count returns the number of units received.
func (s *CountSink[U]) Count() int {
	return s.n
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc[U CodeUnit] func(U)

// Put calls f with the unit.
func (f SinkFunc[U]) Put(u U) {
	f(u)
}
