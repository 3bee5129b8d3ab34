package helpers

import (
	"fmt"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// FormatPercentage formats an integer as a percentage (e.g., 40 -> "40%")
func FormatPercentage(n int) string {
	return fmt.Sprintf("%d%%", n)
}

// FormatPageNumber zero-pads a packet page number (e.g., 1 -> "01")
func FormatPageNumber(n int) string {
	return fmt.Sprintf("%02d", n)
}

// Handle prefixes a social handle with @
func Handle(h string) string {
	if h == "" || strings.HasPrefix(h, "@") {
		return h
	}
	return "@" + h
}

// Classes merges class lists; later conflicting utilities win.
func Classes(parts ...string) string {
	return twmerge.Merge(parts...)
}
