package util

import "fmt"

// FormatBoings formats the boing counter for display.
func FormatBoings(n int) string {
	if n == 1 {
		return "you've boinged 1 time"
	}
	return fmt.Sprintf("you've boinged %d times", n)
}
