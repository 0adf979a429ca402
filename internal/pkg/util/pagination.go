package util

import "strconv"

// ParsePage parses a page parameter, clamping anything non-numeric,
// negative or zero to page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// PageFromOffset converts a legacy item offset into a page number.
func PageFromOffset(raw string, pageSize int) int {
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 1
	}
	return offset/pageSize + 1
}

// TotalPages is ceil(total / pageSize).
func TotalPages(total int64, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
