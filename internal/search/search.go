package search

import (
	"github.com/nikbrunner/tagsearch/internal/model"
	"github.com/sahilm/fuzzy"
)

// Result represents a fuzzy match on a tag.
type Result struct {
	Search         model.TaggedSearch
	MatchedIndexes []int
	Score          int
}

// searchTags implements fuzzy.Source over the tags of a search slice.
type searchTags []model.TaggedSearch

func (st searchTags) String(i int) string {
	return st[i].Tag
}

func (st searchTags) Len() int {
	return len(st)
}

// FuzzySearchTags matches query against the tags of searches.
// Returns results sorted by match score (best first); nil for an empty query.
func FuzzySearchTags(searches []model.TaggedSearch, query string) []Result {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, searchTags(searches))

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Search:         searches[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
