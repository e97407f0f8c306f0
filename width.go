package term

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width: 2 for wide characters (CJK, emoji), 1 for normal, 0 for zero-width (combining marks, control chars).
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// isWideRune returns true if the rune occupies 2 columns (CJK ideographs, fullwidth forms, emoji).
func isWideRune(r rune) bool {
	return uniwidth.RuneWidth(r) == 2
}

// StringWidth returns the total display width of a string (sum of rune widths).
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}

// cellDisplayWidth returns the number of grid columns a cell occupies.
// A wide-character spacer cell reports 0 since its column is already
// accounted for by the wide cell immediately to its left; every other
// cell reports its base character's rune width (combining marks never
// add width). Used to step selection and word-boundary walks across
// wide characters without tripping over their spacer column.
func cellDisplayWidth(cell *Cell) int {
	if cell == nil || cell.IsWideSpacer() {
		return 0
	}
	if cell.Char == 0 {
		return 1
	}
	return runeWidth(cell.Char)
}
