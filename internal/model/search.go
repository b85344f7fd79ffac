package model

// TaggedSearch is a search query saved under a short tag.
type TaggedSearch struct {
	Tag   string `json:"tag"`
	Query string `json:"query"`
}

// Valid reports whether both tag and query are non-empty.
// Whitespace is not trimmed: " " is a valid tag.
func (s TaggedSearch) Valid() bool {
	return s.Tag != "" && s.Query != ""
}

// SearchesFromMap builds a tag-sorted slice from a tag -> query mapping.
func SearchesFromMap(m map[string]string) []TaggedSearch {
	tags := make([]string, 0, len(m))
	for tag := range m {
		tags = append(tags, tag)
	}
	SortTags(tags)

	result := make([]TaggedSearch, len(tags))
	for i, tag := range tags {
		result[i] = TaggedSearch{Tag: tag, Query: m[tag]}
	}
	return result
}
