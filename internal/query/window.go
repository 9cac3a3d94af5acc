package query

// PageWindow returns the ordered page numbers to render as navigation
// buttons around the current page. The same algorithm serves every call
// site; only windowSize varies (3 for the dashboard widget, 5 for the
// full transactions view).
//
// The window clamps at both ends: near the start it is 1..windowSize,
// near the end it is the last windowSize pages, and otherwise it is
// centered with the current page at the middle-left position.
func PageWindow(currentPage, totalPages, windowSize int) []int {
	if totalPages < 1 || windowSize < 1 {
		return []int{}
	}

	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	if totalPages <= windowSize {
		return pageRange(1, totalPages)
	}

	nearStart := (windowSize + 1) / 2
	nearEnd := windowSize / 2

	switch {
	case currentPage <= nearStart:
		return pageRange(1, windowSize)
	case currentPage > totalPages-nearEnd:
		return pageRange(totalPages-windowSize+1, windowSize)
	default:
		return pageRange(currentPage-(windowSize-1)/2, windowSize)
	}
}

func pageRange(start, length int) []int {
	pages := make([]int, length)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}
