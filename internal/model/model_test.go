package model_test

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/nikbrunner/tagsearch/internal/model"
)

func TestTaggedSearch_JSONSerialization(t *testing.T) {
	search := model.TaggedSearch{Tag: "news", Query: "breaking news"}

	data, err := json.Marshal(search)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if string(data) != `{"tag":"news","query":"breaking news"}` {
		t.Errorf("unexpected JSON: %s", data)
	}
}

func TestTaggedSearch_Valid(t *testing.T) {
	tests := []struct {
		name   string
		search model.TaggedSearch
		want   bool
	}{
		{"both set", model.TaggedSearch{Tag: "pets", Query: "cats"}, true},
		{"empty tag", model.TaggedSearch{Tag: "", Query: "cats"}, false},
		{"empty query", model.TaggedSearch{Tag: "pets", Query: ""}, false},
		{"whitespace is not trimmed", model.TaggedSearch{Tag: " ", Query: " "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.search.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompareTags(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"Apple", "news", -1},
		{"news", "Apple", 1},
		{"apple", "APPLE", 0},
		{"app", "Apple", -1},
		{"Zebra", "alpha", 1},
		{"", "", 0},
		{"", "a", -1},
		{"Äpfel", "äpfel", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			got := model.CompareTags(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("CompareTags(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSortTags(t *testing.T) {
	tags := []string{"news", "Zoo", "apple", "Banana"}
	model.SortTags(tags)

	want := []string{"apple", "Banana", "news", "Zoo"}
	if !slices.Equal(tags, want) {
		t.Errorf("SortTags = %v, want %v", tags, want)
	}
}

func TestInsertTag(t *testing.T) {
	tags := []string{"news"}

	tags = model.InsertTag(tags, "Apple")
	if !slices.Equal(tags, []string{"Apple", "news"}) {
		t.Fatalf("after inserting Apple: %v", tags)
	}

	tags = model.InsertTag(tags, "pets")
	if !slices.Equal(tags, []string{"Apple", "news", "pets"}) {
		t.Fatalf("after inserting pets: %v", tags)
	}

	// Duplicate insert is a no-op
	tags = model.InsertTag(tags, "news")
	if len(tags) != 3 {
		t.Errorf("duplicate insert should not grow list, got %v", tags)
	}
}

func TestRemoveTag(t *testing.T) {
	tags := []string{"Apple", "news", "pets"}

	tags = model.RemoveTag(tags, "news")
	if !slices.Equal(tags, []string{"Apple", "pets"}) {
		t.Errorf("after removing news: %v", tags)
	}

	// Removing a missing tag leaves the list alone
	tags = model.RemoveTag(tags, "missing")
	if len(tags) != 2 {
		t.Errorf("expected 2 tags, got %v", tags)
	}
}

func TestFindTagFold(t *testing.T) {
	tags := []string{"Apple", "news"}

	if got := model.FindTagFold(tags, "NEWS"); got != "news" {
		t.Errorf("FindTagFold(NEWS) = %q, want %q", got, "news")
	}
	if got := model.FindTagFold(tags, "pets"); got != "" {
		t.Errorf("FindTagFold(pets) = %q, want empty", got)
	}
}

func TestSearchesFromMap(t *testing.T) {
	searches := model.SearchesFromMap(map[string]string{
		"news":  "breaking news",
		"Apple": "fruit",
	})

	if len(searches) != 2 {
		t.Fatalf("expected 2 searches, got %d", len(searches))
	}
	if searches[0].Tag != "Apple" || searches[0].Query != "fruit" {
		t.Errorf("unexpected first search: %+v", searches[0])
	}
	if searches[1].Tag != "news" || searches[1].Query != "breaking news" {
		t.Errorf("unexpected second search: %+v", searches[1])
	}
}
