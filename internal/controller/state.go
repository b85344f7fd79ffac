// Package controller holds the saved-search list rules as a pure state
// transition function plus a Controller that writes the resulting
// persistence effects through to a key/value Store.
package controller

import (
	"maps"
	"slices"

	"github.com/nikbrunner/tagsearch/internal/model"
)

// Field identifies which part of the screen receives typed input.
type Field int

const (
	FieldQuery Field = iota
	FieldTag
	FieldList
)

// DialogKind distinguishes the modal prompts.
type DialogKind int

const (
	DialogNone DialogKind = iota
	DialogActions
	DialogConfirmDelete
)

// Action is one entry of the long-press actions dialog.
type Action int

const (
	ActionShare Action = iota
	ActionEdit
	ActionDelete
)

// Actions lists the long-press dialog entries in display order.
var Actions = []Action{ActionShare, ActionEdit, ActionDelete}

// String returns the dialog label for the action.
func (a Action) String() string {
	switch a {
	case ActionShare:
		return "Share"
	case ActionEdit:
		return "Edit"
	case ActionDelete:
		return "Delete"
	}
	return "Unknown"
}

// Dialog describes the modal prompt currently shown, if any.
type Dialog struct {
	Kind    DialogKind
	Tag     string   // tag the dialog acts on
	Title   string   // interpolated with the tag
	Message string   // confirm dialogs only
	Items   []string // actions dialog only
}

// Open reports whether a dialog is shown.
func (d Dialog) Open() bool {
	return d.Kind != DialogNone
}

// State is the whole application state.
type State struct {
	Searches  map[string]string // tag -> query, mirrors the store
	Tags      []string          // keys of Searches, case-insensitive sorted
	QueryText string            // query input field
	TagText   string            // tag input field
	Focus     Field
	Dialog    Dialog
}

// NewState builds a State from a tag -> query mapping.
// The map is copied.
func NewState(searches map[string]string) State {
	m := make(map[string]string, len(searches))
	maps.Copy(m, searches)

	tags := slices.Collect(maps.Keys(m))
	model.SortTags(tags)

	return State{
		Searches: m,
		Tags:     tags,
		Focus:    FieldQuery,
	}
}

// Lookup returns the query saved under tag, or "" if there is none.
func (s State) Lookup(tag string) string {
	return s.Searches[tag]
}

// SaveEnabled reports whether the save affordance should be shown:
// both input fields must be non-empty.
func (s State) SaveEnabled() bool {
	return s.QueryText != "" && s.TagText != ""
}

// clone returns a copy that can be mutated without touching s.
func (s State) clone() State {
	c := s
	c.Searches = maps.Clone(s.Searches)
	if c.Searches == nil {
		c.Searches = map[string]string{}
	}
	c.Tags = slices.Clone(s.Tags)
	c.Dialog.Items = slices.Clone(s.Dialog.Items)
	return c
}
