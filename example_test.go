package utf_test

import (
	"fmt"

	"github.com/FocuswithJustin/utf"
)

// Example demonstrates whole-buffer validation
func ExampleView_Validate() {
	ok := utf.UTF8View([]byte("café")).Validate()
	fmt.Printf("well-formed: %v\n", ok)

	ok = utf.UTF8View([]byte{0xC0, 0x80}).Validate()
	fmt.Printf("overlong NUL: %v\n", ok)

	ok = utf.UTF16View([]uint16{0xD800}).Validate()
	fmt.Printf("lone surrogate: %v\n", ok)

	// Output:
	// well-formed: true
	// overlong NUL: false
	// lone surrogate: false
}

// Example demonstrates counting without materializing output
func ExampleCodeUnitCountIn() {
	v := utf.UTF8View([]byte("Aé€🙂"))

	fmt.Printf("codepoints: %d\n", v.CodepointCount())
	fmt.Printf("UTF-8 units: %d\n", v.CodeUnitCount())
	fmt.Printf("UTF-16 units: %d\n", utf.CodeUnitCountIn(v, utf.UTF16{}))
	fmt.Printf("UTF-32 units: %d\n", utf.CodeUnitCountIn(v, utf.UTF32{}))

	// Output:
	// codepoints: 4
	// UTF-8 units: 10
	// UTF-16 units: 5
	// UTF-32 units: 4
}

// Example demonstrates single-pass transcoding into a sink
func ExampleTranscode() {
	v := utf.UTF8View([]byte("hi 🙂"))

	var buf utf.Buffer[uint16]
	n := utf.Transcode(v, utf.UTF16{}, &buf)

	fmt.Printf("%d units: %04X\n", n, buf.Units())

	// Output:
	// 5 units: [0068 0069 0020 D83D DE42]
}

// Example demonstrates the scalar-value validator
func ExampleValidCodepoint() {
	fmt.Println(utf.ValidCodepoint(0x41))
	fmt.Println(utf.ValidCodepoint(0xD800))
	fmt.Println(utf.ValidCodepoint(0x10FFFF))
	fmt.Println(utf.ValidCodepoint(0x110000))

	// Output:
	// true
	// false
	// true
	// false
}
