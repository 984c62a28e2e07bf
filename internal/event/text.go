package event

import "golang.org/x/text/unicode/norm"

// NormalizeText returns s in Unicode NFC form so visually identical titles
// typed on different clients compare equal byte-for-byte.
func NormalizeText(s string) string {
	return norm.NFC.String(s)
}
