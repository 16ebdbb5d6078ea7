package softkeys

// Paginate splits chars into consecutive pages of capacity runes. The last
// page may be shorter. An empty set yields a single empty page so there is
// always a "1/1" to show.
func Paginate(chars []rune, capacity int) [][]rune {
	if capacity < 1 {
		capacity = 1
	}
	if len(chars) == 0 {
		return [][]rune{{}}
	}

	pages := make([][]rune, 0, (len(chars)+capacity-1)/capacity)
	for start := 0; start < len(chars); start += capacity {
		end := min(start+capacity, len(chars))
		pages = append(pages, chars[start:end:end])
	}
	return pages
}
