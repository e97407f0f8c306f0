package term

import "regexp"

// MaxSearchLines bounds how far an incremental search scans before giving
// up, so a keystroke-driven search against a huge scrollback stays
// responsive. A confirmed search (SearchConfirmed) has no such bound.
const MaxSearchLines = 10000

// SearchMatch is one regex match, anchored in absolute buffer coordinates.
type SearchMatch struct {
	Start Point
	End   Point // exclusive
}

// SearchIncremental compiles pattern and scans the absolute rows from
// MaxSearchLines above the bottom of the visible grid down to that bottom
// row. The whole range is always scanned; dir only sets the order of the
// returned matches.
func (t *Terminal) SearchIncremental(pattern string, dir Direction) ([]SearchMatch, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	maxRow := t.maxAbsoluteRow()
	minRow := maxRow - MaxSearchLines
	if minRow < 0 {
		minRow = 0
	}
	matches := t.scanRangeLocked(re, minRow, maxRow, dir)
	t.lastSearchMatches = t.scanRangeLocked(re, minRow, maxRow, DirectionForward)
	return matches, nil
}

// SearchConfirmed compiles pattern and scans the entire buffer (full
// scrollback plus the visible grid) in the given direction.
func (t *Terminal) SearchConfirmed(pattern string, dir Direction) ([]SearchMatch, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	matches := t.scanRangeLocked(re, 0, t.maxAbsoluteRow(), dir)
	t.lastSearchMatches = t.scanRangeLocked(re, 0, t.maxAbsoluteRow(), DirectionForward)
	return matches, nil
}

// lastSearchMatchesLocked returns the match set from the most recent
// SearchIncremental or SearchConfirmed call, sorted in reading order, for
// vi-mode's SearchNext/SearchPrevious/SearchStart/SearchEnd motions.
func (t *Terminal) lastSearchMatchesLocked() []SearchMatch {
	return t.lastSearchMatches
}

func (t *Terminal) scanRangeLocked(re *regexp.Regexp, minRow, maxRow int, dir Direction) []SearchMatch {
	var matches []SearchMatch
	for row := minRow; row <= maxRow; row++ {
		line := string(t.absoluteLineRunesLocked(row))
		locs := re.FindAllStringIndex(line, -1)
		for _, loc := range locs {
			startCol := len([]rune(line[:loc[0]]))
			endCol := len([]rune(line[:loc[1]]))
			matches = append(matches, SearchMatch{
				Start: Point{Row: row, Col: startCol},
				End:   Point{Row: row, Col: endCol},
			})
		}
	}
	if dir == DirectionBackward {
		for i, j := 0, len(matches)-1; i < j; i, j = i+1, j-1 {
			matches[i], matches[j] = matches[j], matches[i]
		}
	}
	return matches
}

// absoluteLineRunesLocked materializes the text of one absolute row,
// substituting a space for empty cells and skipping wide-character spacers.
func (t *Terminal) absoluteLineRunesLocked(row int) []rune {
	var out []rune
	for col := 0; col < t.cols; col++ {
		cell := t.cellAtAbsolute(Point{Row: row, Col: col})
		if cell == nil {
			continue
		}
		if cell.IsWideSpacer() {
			continue
		}
		if cell.Char == 0 {
			out = append(out, ' ')
		} else {
			out = append(out, cell.Char)
		}
	}
	return out
}
