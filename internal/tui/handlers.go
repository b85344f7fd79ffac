package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/tagsearch/internal/controller"
	"github.com/nikbrunner/tagsearch/internal/launch"
	"go.uber.org/zap"
)

// urlOpenedMsg reports the result of handing a search URL to the launcher.
type urlOpenedMsg struct {
	url string
	err error
}

// sharedMsg reports the result of sharing a search.
type sharedMsg struct {
	err error
}

func openURLCmd(l launch.Launcher, url string) tea.Cmd {
	return func() tea.Msg {
		return urlOpenedMsg{url: url, err: l.Open(url)}
	}
}

func shareCmd(l launch.Launcher, subject, body string) tea.Cmd {
	return func() tea.Msg {
		return sharedMsg{err: l.Share(subject, body)}
	}
}

// handleKey routes a key press to the dialog, filter, form or list handler.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.clearMessage()

	st := a.ctrl.State()

	switch st.Dialog.Kind {
	case controller.DialogActions:
		return a.handleActionsKey(msg)
	case controller.DialogConfirmDelete:
		return a.handleConfirmKey(msg, st.Dialog.Tag)
	}

	if a.filter.Active {
		return a.handleFilterKey(msg)
	}

	if st.Focus == controller.FieldQuery || st.Focus == controller.FieldTag {
		return a.handleFormKey(msg, st)
	}

	return a.handleListKey(msg)
}

// dispatch feeds ev to the controller and carries out the effects left
// for the UI. A store error is shown but does not stop the effects.
func (a *App) dispatch(ev controller.Event) tea.Cmd {
	effects, err := a.ctrl.Dispatch(ev)
	if err != nil {
		a.setMessage(MessageError, err.Error())
	}
	a.syncForm()
	return a.runEffects(effects)
}

func (a *App) runEffects(effects []controller.Effect) tea.Cmd {
	var cmds []tea.Cmd

	for _, eff := range effects {
		switch eff := eff.(type) {
		case controller.RefreshList:
			a.refreshRows()
		case controller.OpenURL:
			a.logger.Debug("Opening search", zap.String("url", eff.URL))
			cmds = append(cmds, openURLCmd(a.launcher, eff.URL))
		case controller.Share:
			a.logger.Debug("Sharing search", zap.String("subject", eff.Subject))
			cmds = append(cmds, shareCmd(a.launcher, eff.Subject, eff.Body))
		}
	}

	return tea.Batch(cmds...)
}

func (a App) handleFormKey(msg tea.KeyMsg, st controller.State) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.ForceQuit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Save):
		tag := st.TagText
		cmd := a.dispatch(controller.SaveRequested{})
		if st.SaveEnabled() && a.messageText == "" {
			a.setMessage(MessageSuccess, fmt.Sprintf("Saved %q", tag))
		}
		return a, cmd

	case key.Matches(msg, a.keys.NextField):
		next := controller.FieldTag
		if st.Focus == controller.FieldTag {
			next = controller.FieldList
		}
		return a, a.dispatch(controller.FocusMoved{Field: next})

	case key.Matches(msg, a.keys.PrevField):
		prev := controller.FieldList
		if st.Focus == controller.FieldTag {
			prev = controller.FieldQuery
		}
		return a, a.dispatch(controller.FocusMoved{Field: prev})

	case key.Matches(msg, a.keys.Back):
		return a, a.dispatch(controller.FocusMoved{Field: controller.FieldList})
	}

	// Everything else is typing into the focused input
	var cmd tea.Cmd
	if st.Focus == controller.FieldQuery {
		a.form.QueryInput, cmd = a.form.QueryInput.Update(msg)
		if v := a.form.QueryInput.Value(); v != st.QueryText {
			a.dispatch(controller.QueryChanged{Text: v})
		}
	} else {
		a.form.TagInput, cmd = a.form.TagInput.Update(msg)
		if v := a.form.TagInput.Value(); v != st.TagText {
			a.dispatch(controller.TagChanged{Text: v})
		}
	}

	return a, cmd
}

func (a App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}

	// Reset g flag for any other key
	a.lastKeyWasG = false

	tag := a.SelectedTag()

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.rows)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Bottom):
		if len(a.rows) > 0 {
			a.cursor = len(a.rows) - 1
		}

	case key.Matches(msg, a.keys.Filter):
		a.filter.Active = true
		a.filter.Input.SetValue(a.filter.Query)
		a.filter.Input.CursorEnd()
		return a, a.filter.Input.Focus()

	case key.Matches(msg, a.keys.NextField):
		return a, a.dispatch(controller.FocusMoved{Field: controller.FieldQuery})

	case key.Matches(msg, a.keys.PrevField):
		return a, a.dispatch(controller.FocusMoved{Field: controller.FieldTag})

	case key.Matches(msg, a.keys.Back):
		if a.filter.Query != "" {
			a.filter.Reset()
			a.refreshRows()
		}

	case tag == "":
		// The remaining keys act on the selected tag

	case key.Matches(msg, a.keys.Open):
		return a, a.dispatch(controller.TagTapped{Tag: tag})

	case key.Matches(msg, a.keys.Menu):
		a.menuCursor = 0
		return a, a.dispatch(controller.TagLongPressed{Tag: tag})

	case key.Matches(msg, a.keys.Share):
		return a, a.dispatch(controller.ShareRequested{Tag: tag})

	case key.Matches(msg, a.keys.Edit):
		return a, a.dispatch(controller.EditRequested{Tag: tag})

	case key.Matches(msg, a.keys.Delete):
		return a, a.dispatch(controller.DeleteRequested{Tag: tag})
	}

	return a, nil
}

func (a App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.ForceQuit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Back):
		a.filter.Reset()
		a.refreshRows()
		return a, nil

	case key.Matches(msg, a.keys.Choose):
		a.filter.Active = false
		a.filter.Input.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.filter.Input, cmd = a.filter.Input.Update(msg)
	if q := a.filter.Input.Value(); q != a.filter.Query {
		a.filter.Query = q
		a.cursor = 0
		a.refreshRows()
	}

	return a, cmd
}

func (a App) handleActionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.menuCursor > 0 {
			a.menuCursor--
		}

	case key.Matches(msg, a.keys.Down):
		if a.menuCursor < len(controller.Actions)-1 {
			a.menuCursor++
		}

	case key.Matches(msg, a.keys.Choose):
		return a, a.dispatch(controller.ActionChosen{Action: controller.Actions[a.menuCursor]})

	case key.Matches(msg, a.keys.ChooseShare):
		return a, a.dispatch(controller.ActionChosen{Action: controller.ActionShare})

	case key.Matches(msg, a.keys.ChooseEdit):
		return a, a.dispatch(controller.ActionChosen{Action: controller.ActionEdit})

	case key.Matches(msg, a.keys.ChooseDelete):
		return a, a.dispatch(controller.ActionChosen{Action: controller.ActionDelete})

	case key.Matches(msg, a.keys.Cancel):
		return a, a.dispatch(controller.DialogCancelled{})
	}

	return a, nil
}

func (a App) handleConfirmKey(msg tea.KeyMsg, tag string) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Confirm):
		cmd := a.dispatch(controller.DeleteConfirmed{})
		if a.messageText == "" {
			a.setMessage(MessageSuccess, fmt.Sprintf("Deleted %q", tag))
		}
		return a, cmd

	case key.Matches(msg, a.keys.ConfirmCancel):
		return a, a.dispatch(controller.DialogCancelled{})
	}

	return a, nil
}
