package main

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// detectAndDecode guesses whether content is already valid UTF-8 or is
// Shift-JIS (the encoding the JAHIS standard prescribes on the wire;
// spec.md §6.1 keeps the core itself encoding-agnostic, so this decision
// lives here, in the ambient wrapper) and returns the decoded text.
//
// Adapted from the teacher's detectBig5/detectVendor content-sniffing
// idiom (vendor_dispatcher.go): try the cheap, unambiguous check first,
// fall back to a transform-based decode otherwise.
func detectAndDecode(content []byte) (string, error) {
	if utf8.Valid(content) {
		return string(content), nil
	}
	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), content)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// encodeShiftJIS transcodes UTF-8 text back to Shift-JIS for callers
// that want the on-wire form.
func encodeShiftJIS(text string) ([]byte, error) {
	encoded, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(text))
	if err != nil {
		return nil, err
	}
	return encoded, nil
}
