package model

import (
	"slices"
	"unicode"
	"unicode/utf8"
)

// CompareTags orders tags case-insensitively.
// Each rune pair is compared after upper-casing and then lower-casing both,
// so "Apple" < "banana" < "Cherry".
func CompareTags(a, b string) int {
	for a != "" && b != "" {
		ra, sa := utf8.DecodeRuneInString(a)
		rb, sb := utf8.DecodeRuneInString(b)
		a, b = a[sa:], b[sb:]

		if ra == rb {
			continue
		}
		ra, rb = unicode.ToUpper(ra), unicode.ToUpper(rb)
		if ra == rb {
			continue
		}
		ra, rb = unicode.ToLower(ra), unicode.ToLower(rb)
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
	}

	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// SortTags sorts tags in place, case-insensitive ascending.
// Tags that compare equal keep their relative order.
func SortTags(tags []string) {
	slices.SortStableFunc(tags, CompareTags)
}

// InsertTag inserts tag into an already sorted slice, keeping it sorted.
// Returns the slice unchanged if the exact tag is already present.
func InsertTag(tags []string, tag string) []string {
	if slices.Contains(tags, tag) {
		return tags
	}
	idx, _ := slices.BinarySearchFunc(tags, tag, CompareTags)
	return slices.Insert(tags, idx, tag)
}

// RemoveTag returns tags without the exact tag.
func RemoveTag(tags []string, tag string) []string {
	idx := slices.Index(tags, tag)
	if idx < 0 {
		return tags
	}
	return slices.Delete(tags, idx, idx+1)
}

// FindTagFold returns the existing tag that equals tag case-insensitively,
// or "" if there is none.
func FindTagFold(tags []string, tag string) string {
	for _, t := range tags {
		if CompareTags(t, tag) == 0 {
			return t
		}
	}
	return ""
}
