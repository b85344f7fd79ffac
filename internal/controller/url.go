package controller

import (
	"fmt"
	"strings"
)

// Settings holds the configurable strings the rules interpolate.
type Settings struct {
	SearchURL    string // encoded query is appended
	ShareSubject string
	ShareMessage string // fmt format with one %s verb for the search URL
}

const upperhex = "0123456789ABCDEF"

// EncodeQuery percent-encodes s the way Android's Uri.encode does:
// letters, digits and _-!.~'()* are kept, every other byte of the UTF-8
// encoding becomes %XX. Spaces become %20, never '+'.
func EncodeQuery(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}

	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("_-!.~'()*", c) >= 0
}

// SearchURLFor builds the URL that runs query.
func (s Settings) SearchURLFor(query string) string {
	return s.SearchURL + EncodeQuery(query)
}

// ShareBody formats the share message with url.
// A message without a %s verb gets url appended after a space.
func (s Settings) ShareBody(url string) string {
	if !strings.Contains(s.ShareMessage, "%s") {
		return strings.TrimSpace(s.ShareMessage + " " + url)
	}
	return fmt.Sprintf(s.ShareMessage, url)
}
