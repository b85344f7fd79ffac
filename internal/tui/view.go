package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/tagsearch/internal/controller"
	"github.com/nikbrunner/tagsearch/internal/tui/layout"
)

// renderView creates the complete screen: title, form, tag list, help bar.
// An open dialog replaces the screen with a centered modal.
func (a App) renderView() string {
	st := a.ctrl.State()

	if st.Dialog.Open() {
		return a.renderModal(st.Dialog)
	}

	paneWidth := a.width - 4 // app padding left=2, right=2

	content := a.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render("tagsearch"),
		a.renderForm(st, paneWidth),
		a.renderList(st, paneWidth),
		a.renderHelpBar(),
	))

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderForm renders the query and tag inputs plus the save affordance,
// which is only shown while both inputs are non-empty.
func (a App) renderForm(st controller.State, width int) string {
	labelWidth := a.layoutConfig.Input.LabelWidth
	label := a.styles.Label.Width(labelWidth)

	var save string
	if st.SaveEnabled() {
		save = a.styles.SaveButton.Render("Save") + " " + a.styles.HintDesc.Render("Enter")
	}

	content := strings.Join([]string{
		label.Render("Query") + a.form.QueryInput.View(),
		label.Render("Tag") + a.form.TagInput.View(),
		save,
	}, "\n")

	style := a.styles.Pane
	if st.Focus == controller.FieldQuery || st.Focus == controller.FieldTag {
		style = a.styles.PaneActive
	}
	return style.Width(width - 2).Render(content)
}

// renderList renders the tag list with the filter line and viewport.
func (a App) renderList(st controller.State, width int) string {
	var content strings.Builder

	filterLine := a.filter.Active || a.filter.Query != ""
	visibleHeight := layout.CalculateListHeight(a.height, filterLine, a.layoutConfig.List)
	rowWidth := layout.CalculateRowWidth(a.width, a.layoutConfig.List)

	if a.filter.Active {
		content.WriteString("/" + a.filter.Input.View() + "\n")
	} else if a.filter.Query != "" {
		content.WriteString(a.styles.Filter.Render("/"+a.filter.Query) + "\n")
	}

	if len(a.rows) == 0 {
		if a.filter.Query != "" {
			content.WriteString(a.styles.Empty.Render("(no matches)"))
		} else {
			content.WriteString(a.styles.Empty.Render("(no saved searches)"))
		}
	} else {
		offset := layout.CalculateViewportOffset(a.cursor, len(a.rows), visibleHeight)
		end := min(offset+visibleHeight, len(a.rows))

		for i := offset; i < end; i++ {
			row := a.rows[i]
			selected := st.Focus == controller.FieldList && !a.filter.Active && i == a.cursor
			content.WriteString(a.renderRow(row, st.Lookup(row.Tag), selected, rowWidth) + "\n")
		}
	}

	style := a.styles.Pane
	if st.Focus == controller.FieldList {
		style = a.styles.PaneActive
	}
	return style.
		Width(width - 2).
		Height(visibleHeight + boolToInt(filterLine)).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderRow renders "tag  query", truncating the query first.
func (a App) renderRow(row Row, query string, selected bool, maxWidth int) string {
	cfg := a.layoutConfig

	tag, _ := layout.TruncateText(row.Tag, maxWidth, cfg.Text)
	tagText := a.highlightMatches(tag, row.MatchedIndexes, selected)

	line := tagText
	room := maxWidth - layout.VisibleLength(tag) - cfg.List.QueryGap
	if room > len(cfg.Text.Ellipsis) {
		q, _ := layout.TruncateText(layout.SingleLine(query), room, cfg.Text)
		line += strings.Repeat(" ", cfg.List.QueryGap) + a.styles.Query.Render(q)
	}

	if selected {
		return a.styles.ItemSelected.Width(maxWidth).Render(layout.StripANSI(line))
	}
	return a.styles.Item.Render(line)
}

// highlightMatches styles the runes of tag that the filter matched.
// matched holds byte offsets into tag.
func (a App) highlightMatches(tag string, matched []int, selected bool) string {
	if len(matched) == 0 || selected {
		return tag
	}

	var b strings.Builder
	for i, r := range tag {
		if slices.Contains(matched, i) {
			b.WriteString(a.styles.Match.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// renderModal renders the open dialog centered on the screen.
func (a App) renderModal(d controller.Dialog) string {
	var content strings.Builder

	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal)

	switch d.Kind {
	case controller.DialogActions:
		content.WriteString(a.styles.Title.Render(d.Title) + "\n\n")
		for i, item := range d.Items {
			label := string(rune('1'+i)) + " " + item
			if i == a.menuCursor {
				content.WriteString(a.styles.ItemSelected.Render("▸ " + label))
			} else {
				content.WriteString(a.styles.Item.Render("  " + label))
			}
			content.WriteString("\n")
		}
		content.WriteString("\n")
		content.WriteString(a.renderHintsInline([]Hint{
			{Key: "Enter", Desc: "choose"},
			{Key: "Esc", Desc: "cancel"},
		}))

	case controller.DialogConfirmDelete:
		content.WriteString(a.styles.Title.Render(d.Title) + "\n\n")
		content.WriteString(d.Message + "\n\n")
		content.WriteString(a.renderHintsInline([]Hint{
			{Key: "Enter", Desc: "ok"},
			{Key: "Esc", Desc: "cancel"},
		}))
	}

	modal := a.styles.Modal.Width(modalWidth).Render(content.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}

// renderHelpBar renders the message line and the contextual hints.
func (a App) renderHelpBar() string {
	message := ""
	if a.messageText != "" {
		message = a.renderMessageLine()
	}
	return message + "\n" + a.renderHints(a.contextualHints())
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	var msgStyle lipgloss.Style
	var prefix string

	switch a.messageType {
	case MessageError:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}).
			Bold(true)
		prefix = "✗ "
	case MessageWarning:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC8800", Dark: "#FFAA00"}).
			Bold(true)
		prefix = "⚠ "
	case MessageSuccess:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}).
			Bold(true)
		prefix = "✓ "
	default:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}).
			Bold(true)
	}

	return msgStyle.Render(prefix + a.messageText)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
