package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutWideWidth is the width from which the results pane shrinks to
	// leave more room for object details.
	LayoutWideWidth = 160

	// LayoutMinWidth is the narrowest terminal the split layout is drawn for.
	LayoutMinWidth = 40
)

// Fixed chrome heights.
const (
	headerHeight = 1
	searchHeight = 3 // titled box around one input line
	footerHeight = 1
)

// resultsWidth returns the width of the results pane for a terminal width.
func resultsWidth(total int) int {
	if total >= LayoutWideWidth {
		return total * 25 / 100
	}
	return total * 35 / 100
}

// bodyHeight returns the height left for the results and detail panes.
func bodyHeight(total int) int {
	return max(total-headerHeight-searchHeight-footerHeight, 3)
}
