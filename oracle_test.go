package utf_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/FocuswithJustin/utf"
)

// The x/text UTF-16 codec serves as an independent oracle: transcoding
// through this package and through x/text must produce identical data.

var oracleInputs = []string{
	"",
	"plain ascii",
	"café €5",
	"Ω≈ç√∫˜µ",
	"日本語のテキスト",
	"🙂🇸🇪𝔘𝔫𝔦𝔠𝔬𝔡𝔢",
	"\x00߿ࠀ퟿�\U00010000\U0010FFFF",
}

func utf16BE(units []uint16) []byte {
	out := make([]byte, 0, len(units)*2)
	for _, u := range units {
		out = binary.BigEndian.AppendUint16(out, u)
	}
	return out
}

func TestTranscodeMatchesXText(t *testing.T) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()

	for _, s := range oracleInputs {
		v := utf.UTF8View([]byte(s))
		if !v.Validate() {
			t.Fatalf("input %q failed validation", s)
		}

		got := utf16BE(utf.TranscodeToSlice(v, utf.UTF16{}))
		want, _, err := transform.Bytes(enc, []byte(s))
		if err != nil {
			t.Fatalf("x/text encoder failed on %q: %v", s, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("input %q: transcode = % X, x/text = % X", s, got, want)
		}
	}
}

func TestTranscodeBackMatchesXText(t *testing.T) {
	dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()

	for _, s := range oracleInputs {
		units := utf.TranscodeToSlice(utf.UTF8View([]byte(s)), utf.UTF16{})
		v := utf.UTF16View(units)
		if !v.Validate() {
			t.Fatalf("UTF-16 form of %q failed validation", s)
		}

		got := utf.TranscodeToSlice(v, utf.UTF8{})
		want, _, err := transform.Bytes(dec, utf16BE(units))
		if err != nil {
			t.Fatalf("x/text decoder failed on %q: %v", s, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("input %q: transcode = % X, x/text = % X", s, got, want)
		}
	}
}
