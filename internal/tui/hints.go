package tui

import (
	"strings"

	"github.com/nikbrunner/tagsearch/internal/controller"
)

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "search")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint
	Action []Hint
	Edit   []Hint
	System []Hint
}

// All returns all hints flattened in display order: Nav + Action + Edit + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.Edit)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.Edit...)
	result = append(result, h.System...)
	return result
}

// renderHints renders hints for the bottom bar: "j/k:move Enter:search"
func (a App) renderHints(hints HintSet) string {
	all := hints.All()
	parts := make([]string, len(all))
	for i, h := range all {
		parts[i] = a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints for modals: "Enter ok  Esc cancel"
func (a App) renderHintsInline(hints []Hint) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// contextualHints returns the hints for what currently has focus.
// Dialogs carry their hints inside the modal.
func (a App) contextualHints() HintSet {
	st := a.ctrl.State()

	switch {
	case st.Dialog.Open():
		return HintSet{}

	case a.filter.Active:
		return HintSet{
			Nav:    []Hint{{Key: "type", Desc: "filter"}},
			Action: []Hint{{Key: "Enter", Desc: "apply"}},
			System: []Hint{{Key: "Esc", Desc: "clear"}},
		}

	case st.Focus == controller.FieldQuery || st.Focus == controller.FieldTag:
		hints := HintSet{
			Nav:    []Hint{{Key: "Tab", Desc: "next"}},
			System: []Hint{{Key: "Esc", Desc: "list"}},
		}
		if st.SaveEnabled() {
			hints.Action = []Hint{{Key: "Enter", Desc: "save"}}
		}
		return hints
	}

	hints := HintSet{
		Nav: []Hint{
			{Key: "j/k", Desc: "move"},
			{Key: "Tab", Desc: "inputs"},
		},
		Action: []Hint{
			{Key: "/", Desc: "filter"},
		},
		System: []Hint{
			{Key: "q", Desc: "quit"},
		},
	}
	if len(a.rows) > 0 {
		hints.Action = append([]Hint{{Key: "Enter", Desc: "search"}, {Key: "m", Desc: "menu"}}, hints.Action...)
		hints.Edit = []Hint{
			{Key: "s", Desc: "share"},
			{Key: "e", Desc: "edit"},
			{Key: "d", Desc: "del"},
		}
	}
	return hints
}
