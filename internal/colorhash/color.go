// Package colorhash derives stable avatar colors from display names.
package colorhash

import (
	"fmt"
	"unicode/utf16"
)

// StringToColor folds the UTF-16 code units of s into a wrapping 32-bit
// hash (hash*31 + unit) and formats its three low bytes, low byte first, as
// a #rrggbb color.
func StringToColor(s string) string {
	var hash int32
	for _, unit := range utf16.Encode([]rune(s)) {
		hash = int32(unit) + (hash<<5 - hash)
	}
	return fmt.Sprintf("#%02x%02x%02x", uint8(hash), uint8(hash>>8), uint8(hash>>16))
}
