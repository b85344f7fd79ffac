package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	List  ListConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// ListConfig holds dimensions of the tag list pane.
type ListConfig struct {
	// HeightReduction is subtracted from terminal height for list rows.
	// app padding (1) + title (1) + form pane (5) + list borders (2) + help bar (2) = 11
	HeightReduction int

	// MinHeight is the minimum number of list rows shown.
	MinHeight int

	// ContentPadding is subtracted from the list width for row rendering.
	// Accounts for pane border/padding on each side plus the app padding.
	ContentPadding int

	// QueryGap separates the tag column from the query shown beside it.
	QueryGap int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// WidthPercent is the modal width as percentage of terminal width.
	WidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	FilterCharLimit int

	// LabelWidth is the width reserved for "Query"/"Tag" in front of the inputs.
	LabelWidth int

	StandardWidth int // query and tag inputs
	FilterWidth   int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		List: ListConfig{
			HeightReduction: 11,
			MinHeight:       3,
			ContentPadding:  8,
			QueryGap:        2,
		},
		Modal: ModalConfig{
			WidthPercent: 50,
			MinWidth:     40,
			MaxWidth:     72,
		},
		Input: InputConfig{
			FilterCharLimit: 50,
			LabelWidth:      7,
			StandardWidth:   40,
			FilterWidth:     30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
