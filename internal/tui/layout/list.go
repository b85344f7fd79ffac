package layout

// CalculateListHeight computes how many rows the tag list can show.
// filterLine is true when a filter line takes one row above the tags.
// Returns at least MinHeight.
func CalculateListHeight(terminalHeight int, filterLine bool, cfg ListConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if filterLine {
		height--
	}
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculateRowWidth computes the width available for one list row.
func CalculateRowWidth(terminalWidth int, cfg ListConfig) int {
	width := terminalWidth - cfg.ContentPadding
	if width < 1 {
		return 1
	}
	return width
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected row visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}

// ClampCursor keeps cursor inside a list of total rows.
func ClampCursor(cursor, total int) int {
	if total == 0 || cursor < 0 {
		return 0
	}
	if cursor >= total {
		return total - 1
	}
	return cursor
}
