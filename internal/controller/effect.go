package controller

// Effect is a side effect requested by Reduce.
// PutSearch and RemoveSearch are applied by Controller; the rest are left
// for the UI to carry out.
type Effect interface {
	isEffect()
}

// PutSearch persists Query under Tag.
type PutSearch struct{ Tag, Query string }

// RemoveSearch deletes Tag from the store.
type RemoveSearch struct{ Tag string }

// OpenURL hands URL to the default URL handler.
type OpenURL struct{ URL string }

// Share hands a subject and body to the share mechanism.
type Share struct{ Subject, Body string }

// RefreshList signals that the tag list changed and must be redrawn.
type RefreshList struct{}

func (PutSearch) isEffect()    {}
func (RemoveSearch) isEffect() {}
func (OpenURL) isEffect()      {}
func (Share) isEffect()        {}
func (RefreshList) isEffect()  {}
