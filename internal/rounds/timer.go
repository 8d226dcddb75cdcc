package rounds

import (
	"fmt"
	"math"
	"strings"
)

// ParseTimer converts an M:SS clock token ("1:40", "0:05") to total seconds.
// Only the exact shape is accepted: a single colon and a two-digit seconds
// component. Sentinels and garbage return ok=false; malformed input never
// panics.
func ParseTimer(token string) (seconds int, ok bool) {
	i := strings.IndexByte(token, ':')
	if i < 1 || i != len(token)-3 {
		return 0, false
	}

	mins, ok := atoiDigits(token[:i])
	if !ok {
		return 0, false
	}
	secs, ok := atoiDigits(token[i+1:])
	if !ok {
		return 0, false
	}

	return mins*60 + secs, true
}

// FormatSeconds converts total seconds to an M:SS display string, carrying
// a rounded-up seconds component of 60 into the minutes.
func FormatSeconds(seconds float64) string {
	m := int(seconds / 60)
	s := int(math.Round(math.Mod(seconds, 60)))
	if s == 60 {
		m++
		s = 0
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// atoiDigits parses a non-empty all-digit string. Unlike strconv.Atoi it
// rejects signs and whitespace, so "1:-5" and " 1:05" stay unparsed.
func atoiDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
