package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/nikbrunner/tagsearch/internal/tui/layout"
)

// MessageType sets the look of the status message line.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// Row is one visible line of the tag list.
type Row struct {
	Tag            string
	MatchedIndexes []int // byte offsets of Tag matched by the filter
}

// FormState holds the two inputs the user types a search into.
type FormState struct {
	QueryInput textinput.Model
	TagInput   textinput.Model
}

// NewFormState creates a FormState with initialized inputs.
// Neither input has a character limit; saved tags and queries may be any length.
func NewFormState(cfg layout.LayoutConfig) FormState {
	queryInput := textinput.New()
	queryInput.Placeholder = "search query"
	queryInput.CharLimit = 0
	queryInput.Width = cfg.Input.StandardWidth

	tagInput := textinput.New()
	tagInput.Placeholder = "tag"
	tagInput.CharLimit = 0
	tagInput.Width = cfg.Input.StandardWidth

	return FormState{
		QueryInput: queryInput,
		TagInput:   tagInput,
	}
}

// FilterState holds the list filter.
type FilterState struct {
	Input  textinput.Model
	Active bool   // filter input has focus
	Query  string // applied filter, kept after the input closes
}

// NewFilterState creates a FilterState with an initialized input.
func NewFilterState(cfg layout.LayoutConfig) FilterState {
	input := textinput.New()
	input.Placeholder = "Filter tags..."
	input.CharLimit = cfg.Input.FilterCharLimit
	input.Width = cfg.Input.FilterWidth
	return FilterState{Input: input}
}

// Reset clears the filter.
func (f *FilterState) Reset() {
	f.Input.Reset()
	f.Input.Blur()
	f.Active = false
	f.Query = ""
}
