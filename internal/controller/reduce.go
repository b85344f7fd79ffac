package controller

import (
	"fmt"

	"github.com/nikbrunner/tagsearch/internal/model"
)

// Reduce applies ev to s and returns the next state plus the effects to run.
// It never mutates s.
func (st Settings) Reduce(s State, ev Event) (State, []Effect) {
	next := s.clone()

	switch ev := ev.(type) {
	case QueryChanged:
		next.QueryText = ev.Text
		return next, nil

	case TagChanged:
		next.TagText = ev.Text
		return next, nil

	case FocusMoved:
		next.Focus = ev.Field
		return next, nil

	case SaveRequested:
		return st.save(next)

	case TagTapped:
		url := st.SearchURLFor(next.Lookup(ev.Tag))
		return next, []Effect{OpenURL{URL: url}}

	case TagLongPressed:
		next.Dialog = actionsDialog(ev.Tag)
		return next, nil

	case ActionChosen:
		if next.Dialog.Kind != DialogActions {
			return next, nil
		}
		tag := next.Dialog.Tag
		next.Dialog = Dialog{}

		switch ev.Action {
		case ActionShare:
			return st.Reduce(next, ShareRequested{Tag: tag})
		case ActionEdit:
			return st.Reduce(next, EditRequested{Tag: tag})
		case ActionDelete:
			return st.Reduce(next, DeleteRequested{Tag: tag})
		}
		return next, nil

	case ShareRequested:
		url := st.SearchURLFor(next.Lookup(ev.Tag))
		return next, []Effect{Share{Subject: st.ShareSubject, Body: st.ShareBody(url)}}

	case EditRequested:
		// The old entry stays until the fields are saved again
		next.TagText = ev.Tag
		next.QueryText = next.Lookup(ev.Tag)
		next.Focus = FieldQuery
		return next, nil

	case DeleteRequested:
		next.Dialog = confirmDeleteDialog(ev.Tag)
		return next, nil

	case DeleteConfirmed:
		if next.Dialog.Kind != DialogConfirmDelete {
			return next, nil
		}
		tag := next.Dialog.Tag
		next.Dialog = Dialog{}
		next.Tags = model.RemoveTag(next.Tags, tag)
		delete(next.Searches, tag)
		return next, []Effect{RemoveSearch{Tag: tag}, RefreshList{}}

	case DialogCancelled:
		next.Dialog = Dialog{}
		return next, nil
	}

	return next, nil
}

// save stores the input fields as a tagged search.
// Empty fields make it a no-op. A tag equal to an existing one under
// case-insensitive comparison replaces it, taking the new spelling.
func (st Settings) save(next State) (State, []Effect) {
	tag, query := next.TagText, next.QueryText
	if tag == "" || query == "" {
		return next, nil
	}

	var effects []Effect

	if existing := model.FindTagFold(next.Tags, tag); existing != "" && existing != tag {
		next.Tags = model.RemoveTag(next.Tags, existing)
		delete(next.Searches, existing)
		effects = append(effects, RemoveSearch{Tag: existing})
	}

	next.Searches[tag] = query
	next.Tags = model.InsertTag(next.Tags, tag)
	effects = append(effects, PutSearch{Tag: tag, Query: query}, RefreshList{})

	next.QueryText = ""
	next.TagText = ""
	next.Focus = FieldQuery

	return next, effects
}

func actionsDialog(tag string) Dialog {
	items := make([]string, len(Actions))
	for i, a := range Actions {
		items[i] = a.String()
	}
	return Dialog{
		Kind:  DialogActions,
		Tag:   tag,
		Title: fmt.Sprintf("Share, Edit or Delete the search tagged as %q", tag),
		Items: items,
	}
}

func confirmDeleteDialog(tag string) Dialog {
	return Dialog{
		Kind:    DialogConfirmDelete,
		Tag:     tag,
		Title:   "Delete search?",
		Message: fmt.Sprintf("Are you sure you want to delete the search %q?", tag),
	}
}
