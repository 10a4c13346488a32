package document

import "golang.org/x/text/encoding/charmap"

// toWindows1252 maps text into the single-byte encoding of the core PDF fonts.
// Runes with no Windows-1252 byte become '?'; order is preserved.
func toWindows1252(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return string(out)
}
