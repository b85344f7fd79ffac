package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/tagsearch/internal/controller"
	"github.com/nikbrunner/tagsearch/internal/launch"
	"github.com/nikbrunner/tagsearch/internal/model"
	"github.com/nikbrunner/tagsearch/internal/picker"
	"github.com/nikbrunner/tagsearch/internal/search"
)

// pickFunc chooses one of several matches; ok is false when the user backs out.
type pickFunc func(results []search.Result, query string) (s model.TaggedSearch, ok bool, err error)

// pickWithTUI shows the picker.
func pickWithTUI(results []search.Result, query string) (model.TaggedSearch, bool, error) {
	finalModel, err := tea.NewProgram(picker.New(results, query)).Run()
	if err != nil {
		return model.TaggedSearch{}, false, fmt.Errorf("error running picker: %w", err)
	}
	s, ok := finalModel.(picker.Picker).SelectedSearch()
	return s, ok, nil
}

// runQuickSearch fuzzy matches query against the tags and opens the chosen
// search. A single match is opened directly.
func runQuickSearch(w io.Writer, c *controller.Controller, l launch.Launcher, query string, pick pickFunc) error {
	results := search.FuzzySearchTags(model.SearchesFromMap(c.State().Searches), query)

	var selected model.TaggedSearch
	switch len(results) {
	case 0:
		_, err := fmt.Fprintf(w, "No searches found for %q\n", query)
		return err
	case 1:
		selected = results[0].Search
	default:
		s, ok, err := pick(results, query)
		if err != nil || !ok {
			return err
		}
		selected = s
	}

	if _, err := fmt.Fprintf(w, "Opening: %s\n", selected.Tag); err != nil {
		return err
	}

	effects, err := c.Dispatch(controller.TagTapped{Tag: selected.Tag})
	if err != nil {
		return err
	}
	return runEffects(l, effects)
}
