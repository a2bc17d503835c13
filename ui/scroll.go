package ui

// AtBottom reports whether a scroll container is scrolled exactly to its end.
// A container whose content is shorter than its height reports a scroll
// height equal to its client height, so it is always at the bottom.
func AtBottom(scrollTop, clientHeight, scrollHeight int) bool {
	return clientHeight+scrollTop == scrollHeight
}
