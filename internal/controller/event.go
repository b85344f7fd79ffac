package controller

// Event is a discrete user input fed to Reduce.
type Event interface {
	isEvent()
}

// QueryChanged is sent on every keystroke in the query field.
type QueryChanged struct{ Text string }

// TagChanged is sent on every keystroke in the tag field.
type TagChanged struct{ Text string }

// FocusMoved moves input focus to Field.
type FocusMoved struct{ Field Field }

// SaveRequested saves the two input fields as a tagged search.
type SaveRequested struct{}

// TagTapped opens the search saved under Tag.
type TagTapped struct{ Tag string }

// TagLongPressed opens the share/edit/delete dialog for Tag.
type TagLongPressed struct{ Tag string }

// ActionChosen picks an entry of the open actions dialog.
type ActionChosen struct{ Action Action }

// ShareRequested shares the search saved under Tag.
type ShareRequested struct{ Tag string }

// EditRequested copies Tag and its query back into the input fields.
type EditRequested struct{ Tag string }

// DeleteRequested asks for confirmation before deleting Tag.
type DeleteRequested struct{ Tag string }

// DeleteConfirmed deletes the tag of the open confirm dialog.
type DeleteConfirmed struct{}

// DialogCancelled dismisses the open dialog.
type DialogCancelled struct{}

func (QueryChanged) isEvent()    {}
func (TagChanged) isEvent()      {}
func (FocusMoved) isEvent()      {}
func (SaveRequested) isEvent()   {}
func (TagTapped) isEvent()       {}
func (TagLongPressed) isEvent()  {}
func (ActionChosen) isEvent()    {}
func (ShareRequested) isEvent()  {}
func (EditRequested) isEvent()   {}
func (DeleteRequested) isEvent() {}
func (DeleteConfirmed) isEvent() {}
func (DialogCancelled) isEvent() {}
