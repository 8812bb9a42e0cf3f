package catalog

import (
	"fmt"

	"jobcatalog/internal/pipeline"
)

// Paginate renders one "<i>. <value>" line per page, where i is the 1-based
// position of the first value on that page: 1, 1+pageSize, 1+2*pageSize...
// Only the first value of each page is rendered. Pages that would start past
// the end of values are dropped, and a pageSize below 1 renders nothing.
func Paginate(values []string, pageSize, numPages int) []string {
	if pageSize < 1 {
		return []string{}
	}
	next := func(i int) int {
		// saturate past the end instead of overflowing on huge page sizes
		if pageSize > len(values)-i {
			return len(values) + 1
		}
		return i + pageSize
	}
	starts := pipeline.Limit(pipeline.Iterate(1, next), numPages)
	starts = pipeline.TakeWhile(starts, func(i int) bool { return i <= len(values) })
	return pipeline.Collect(pipeline.Map(starts, func(i int) string {
		return menuLine(i, values[i-1])
	}))
}

// PaginateLoop is Paginate written as a loop.
func PaginateLoop(values []string, pageSize, numPages int) []string {
	out := []string{}
	if pageSize < 1 {
		return out
	}
	for page, i := 0, 1; page < numPages && i <= len(values); page++ {
		out = append(out, menuLine(i, values[i-1]))
		if pageSize > len(values)-i {
			break
		}
		i += pageSize
	}
	return out
}

// PageCount is the number of full pages of pageSize in total.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return total / pageSize
}

// Menu numbers the first n values from 1.
func Menu(values []string, n int) []string {
	out := []string{}
	for i := 0; i < n && i < len(values); i++ {
		out = append(out, menuLine(i+1, values[i]))
	}
	return out
}

// MenuRange is Menu built from a closed integer range.
func MenuRange(values []string, n int) []string {
	return pipeline.Collect(pipeline.Map(pipeline.RangeClosed(1, min(n, len(values))), func(i int) string {
		return menuLine(i, values[i-1])
	}))
}

func menuLine(i int, v string) string {
	return fmt.Sprintf("%d. %s", i, v)
}
